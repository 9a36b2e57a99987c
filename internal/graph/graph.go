// Package graph implements the dependency graph builder (C11): one node
// per TypeScript file carrying its exported names, and one edge per import
// whose target is resolved (local) or left as the raw specifier (external).
package graph

import (
	"github.com/codeindex-go/codeindexer/internal/model"
	"github.com/codeindex-go/codeindexer/internal/resolve"
)

// Builder accumulates nodes and edges across a workspace scan.
type Builder struct {
	graph model.DependencyGraph
}

// NewBuilder starts an empty graph.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddFile records one file's node and its import edges. exports is the
// file's exported names (from C7); imports is its parsed import list. The
// builder does not deduplicate edges even when multiple imports target the
// same file.
func (b *Builder) AddFile(path string, exports []string, imports []model.ImportInfo) {
	if exports == nil {
		exports = []string{}
	}
	b.graph.Nodes = append(b.graph.Nodes, model.DependencyNode{File: path, Exports: exports})

	for _, imp := range imports {
		external := resolve.IsExternal(imp.Source)
		to := imp.Source
		if !external {
			to = resolve.Resolve(path, imp.Source)
		}
		b.graph.Edges = append(b.graph.Edges, model.DependencyEdge{
			From:     path,
			To:       to,
			Symbols:  imp.Symbols,
			External: external,
		})
	}
}

// Graph returns the built graph.
func (b *Builder) Graph() model.DependencyGraph {
	return b.graph
}
