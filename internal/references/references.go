// Package references implements the reference finder (C10): enumerating
// every identifier token equal to a target name within a TypeScript parse
// tree, classifying each occurrence as definition or use.
package references

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codeindex-go/codeindexer/internal/model"
)

var identifierKinds = map[string]bool{
	"identifier":          true,
	"type_identifier":     true,
	"property_identifier": true,
}

// definitionParentKinds are the parent node kinds whose first name-bearing
// child counts as a definition occurrence rather than a use.
var definitionParentKinds = map[string]bool{
	"function_declaration":  true,
	"class_declaration":     true,
	"interface_declaration": true,
	"variable_declarator":   true,
	"method_definition":     true,
	"property_signature":    true,
	"import_specifier":      true,
	"export_specifier":      true,
}

// Find walks root and returns one Reference per identifier/type_identifier/
// property_identifier node whose text equals name, in tree order.
func Find(path string, root *ts.Node, source []byte, name string) []model.Reference {
	var refs []model.Reference
	walk(root, source, name, path, &refs)
	return refs
}

func walk(node *ts.Node, source []byte, name, path string, refs *[]model.Reference) {
	if identifierKinds[node.Kind()] && node.Utf8Text(source) == name {
		pos := node.StartPosition()
		*refs = append(*refs, model.Reference{
			File:         path,
			Line:         int(pos.Row) + 1,
			Column:       int(pos.Column),
			Context:      lineContext(source, int(pos.Row)),
			IsDefinition: isDefinitionOccurrence(node),
		})
	}

	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		if child := node.Child(i); child != nil {
			walk(child, source, name, path, refs)
		}
	}
}

// isDefinitionOccurrence reports whether node is the first name-bearing
// child of a definition-shaped parent — identity comparison against the
// parent's first matching child, not a text comparison.
func isDefinitionOccurrence(node *ts.Node) bool {
	parent := node.Parent()
	if parent == nil || !definitionParentKinds[parent.Kind()] {
		return false
	}
	count := parent.ChildCount()
	for i := uint(0); i < count; i++ {
		child := parent.Child(i)
		if child == nil {
			continue
		}
		if identifierKinds[child.Kind()] {
			return child.StartByte() == node.StartByte() && child.EndByte() == node.EndByte()
		}
	}
	return false
}

// lineContext returns the trimmed source line at the given 0-based row.
func lineContext(source []byte, row int) string {
	lines := strings.Split(string(source), "\n")
	if row < 0 || row >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[row])
}
