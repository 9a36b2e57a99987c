// Package lang holds the cross-language declaration tables: which grammar
// node kinds count as a declaration of interest, which are containers worth
// descending into, and how a declaration's name and signature are pulled out
// of the source buffer. This is the single place new languages or kinds are
// added.
package lang

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codeindex-go/codeindexer/internal/model"
)

// declarationKinds maps a grammar node kind to its exposed symbol kind. This
// is the closed set from the data model; node kinds outside this map are
// never declarations of interest.
var declarationKinds = map[string]model.SymbolKind{
	"function_declaration":  model.KindFunction,
	"class_declaration":     model.KindClass,
	"interface_declaration": model.KindInterface,
	"method_definition":     model.KindMethod,
	"lexical_declaration":   model.KindVariable,
	"variable_declaration":  model.KindVariable,
	"function_item":         model.KindFunction,
	"struct_item":           model.KindStruct,
	"trait_item":            model.KindTrait,
	"impl_item":             model.KindImpl,
	"field_declaration":     model.KindField,
}

// containerKinds is the set of node kinds whose children must be descended
// into to find nested declarations, beyond the always-descend root.
var containerKinds = map[string]bool{
	"program":                 true,
	"source_file":             true,
	"class_declaration":       true,
	"impl_item":               true,
	"class_body":              true,
	"declaration_list":        true,
	"export_statement":        true,
	"mod_item":                true,
	"struct_item":             true,
	"field_declaration_list":  true,
}

// Classify answers whether node is a declaration of interest, its exposed
// kind if so, and whether it is a container whose children must be
// descended into regardless of declaration status.
func Classify(node *ts.Node) (isDeclaration bool, kind model.SymbolKind, isContainer bool) {
	k := node.Kind()
	exposed, isDecl := declarationKinds[k]
	return isDecl, exposed, containerKinds[k]
}

// IsContainer reports whether a node kind is in the container set, without
// needing a *ts.Node (used by callers that only have a kind string handy).
func IsContainer(kind string) bool {
	return containerKinds[kind]
}
