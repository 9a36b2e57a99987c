// Package symbols implements the symbol locator (C9): resolving a name to
// its definition, first within a file, then one hop through its imports.
package symbols

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codeindex-go/codeindexer/internal/lang"
	"github.com/codeindex-go/codeindexer/internal/model"
)

// Found is one local declaration match: its exposed kind, signature and
// 1-based start line.
type Found struct {
	Kind      model.SymbolKind
	Signature string
	Line      int
}

// FindInTree walks root pre-order and returns the first declaration whose
// extracted name equals target. The first hit wins: shadowed or duplicated
// declarations resolve to the outermost/earliest occurrence.
func FindInTree(root *ts.Node, source []byte, target string) (Found, bool) {
	return findNode(root, source, target)
}

func findNode(node *ts.Node, source []byte, target string) (Found, bool) {
	isDecl, kind, _ := lang.Classify(node)
	if isDecl {
		if name := lang.Name(node, source); name == target {
			return Found{
				Kind:      kind,
				Signature: lang.Signature(node, source),
				Line:      int(node.StartPosition().Row) + 1,
			}, true
		}
	}

	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if found, ok := findNode(child, source, target); ok {
			return found, true
		}
	}
	return Found{}, false
}
