package lang

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// Signature returns the declaration's single-line signature: the node's text
// up to the first '{', trimmed. If the node text contains no '{' the whole
// node text is returned, trimmed.
func Signature(node *ts.Node, source []byte) string {
	text := node.Utf8Text(source)
	if i := strings.IndexByte(text, '{'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// Name finds the declared name of a declaration node by scanning its
// immediate children for the first identifier/type_identifier/
// property_identifier child. lexical_declaration and variable_declaration
// instead descend one level into a variable_declarator child and take its
// first identifier. Returns "" if no name is found — the declaration is
// still valid for skeletons but unnamed for symbol lookup purposes.
func Name(node *ts.Node, source []byte) string {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier", "type_identifier", "property_identifier":
			return child.Utf8Text(source)
		case "variable_declarator":
			if name := firstIdentifier(child, source); name != "" {
				return name
			}
		}
	}
	return ""
}

// firstIdentifier scans node's immediate children for the first plain
// identifier, used for the variable_declarator -> identifier descent.
func firstIdentifier(node *ts.Node, source []byte) string {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == "identifier" {
			return child.Utf8Text(source)
		}
	}
	return ""
}
