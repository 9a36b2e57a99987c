package search

import (
	"sort"

	"github.com/codeindex-go/codeindexer/internal/model"
	"github.com/codeindex-go/codeindexer/internal/skeleton"

	ts "github.com/tree-sitter/go-tree-sitter"
)

const (
	scoreThreshold = 60
	topK           = 10
)

// ScanFile walks root's declarations (the same traversal the skeleton
// builder uses) and returns every declaration whose signature scores above
// the threshold against query. Pure and side-effect free so callers can run
// it concurrently across files and merge afterward in walker order.
func ScanFile(path string, root *ts.Node, source []byte, query string) []model.SearchResult {
	var out []model.SearchResult
	skeleton.Walk(root, source, func(d skeleton.Declaration) {
		score, ok := Score(d.Signature, query)
		if !ok || score <= scoreThreshold {
			return
		}
		out = append(out, model.SearchResult{
			File:         path,
			Line:         uint32(d.Node.StartPosition().Row) + 1,
			MatchContent: d.Signature,
			Score:        score,
		})
	})
	return out
}

// Top takes per-file result slices already ordered by walker order (the
// outer slice) and returns the top-K overall, sorted by descending score,
// ties broken by the input order — i.e. by walker order, then by
// within-file discovery order.
func Top(perFile [][]model.SearchResult) []model.SearchResult {
	var all []model.SearchResult
	for _, f := range perFile {
		all = append(all, f...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})
	if len(all) > topK {
		all = all[:topK]
	}
	return all
}
