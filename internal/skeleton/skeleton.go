// Package skeleton builds the per-file declaration outline used by
// generate_repo_map, and exposes the shared depth-tracked traversal that the
// fuzzy ranker also walks.
package skeleton

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codeindex-go/codeindexer/internal/lang"
)

// Declaration is one declaration node reached by Walk, with its depth in the
// traversal (for indentation) and its extracted signature.
type Declaration struct {
	Node      *ts.Node
	Depth     int
	Signature string
}

// Walk performs the depth-tracked traversal shared by the skeleton builder
// and the fuzzy ranker: at depth 0 every child is visited; below depth 0
// only children of container kinds are visited. Whenever a declaration node
// is found, visit is called and the recursion continues into its children
// at depth+1; non-declaration nodes recurse at the same depth.
func Walk(root *ts.Node, source []byte, visit func(Declaration)) {
	walk(root, source, 0, visit)
}

func walk(node *ts.Node, source []byte, depth int, visit func(Declaration)) {
	isDecl, _, isContainer := lang.Classify(node)

	nextDepth := depth
	if isDecl {
		visit(Declaration{Node: node, Depth: depth, Signature: lang.Signature(node, source)})
		nextDepth = depth + 1
	}

	if depth != 0 && !isContainer {
		return
	}

	count := node.NamedChildCount()
	for i := uint(0); i < count; i++ {
		child := node.NamedChild(i)
		if child != nil {
			walk(child, source, nextDepth, visit)
		}
	}
}

// Build renders a file's skeleton: one indented line per declaration,
// in traversal order.
func Build(root *ts.Node, source []byte) string {
	var b strings.Builder
	Walk(root, source, func(d Declaration) {
		b.WriteString(strings.Repeat("  ", d.Depth))
		b.WriteString(d.Signature)
		b.WriteByte('\n')
	})
	return b.String()
}
