// Package imports implements the import/export extractor (C7): it turns
// TypeScript import_statement and export_statement nodes into the
// structured import/export model, full-tree (not container-restricted)
// since the grammar can place these statements at arbitrary top-level
// positions.
package imports

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codeindex-go/codeindexer/internal/model"
)

// Extract walks the whole tree and returns every import and export
// statement found, in tree order.
func Extract(root *ts.Node, source []byte) model.ImportsExports {
	var result model.ImportsExports
	walk(root, source, &result)
	return result
}

func walk(node *ts.Node, source []byte, result *model.ImportsExports) {
	switch node.Kind() {
	case "import_statement":
		if imp, ok := parseImport(node, source); ok {
			result.Imports = append(result.Imports, imp)
		}
	case "export_statement":
		result.Exports = append(result.Exports, parseExport(node, source)...)
	}

	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		if child := node.Child(i); child != nil {
			walk(child, source, result)
		}
	}
}

func parseImport(node *ts.Node, source []byte) (model.ImportInfo, bool) {
	var info model.ImportInfo

	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "string", "string_fragment":
			info.Source = strings.Trim(child.Utf8Text(source), `"'`)
		case "import_clause":
			parseImportClause(child, source, &info)
		}
	}

	if info.Source == "" {
		return model.ImportInfo{}, false
	}
	return info, true
}

func parseImportClause(clause *ts.Node, source []byte, info *model.ImportInfo) {
	count := clause.ChildCount()
	for i := uint(0); i < count; i++ {
		child := clause.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier":
			info.Symbols = append(info.Symbols, child.Utf8Text(source))
			info.IsDefault = true
		case "namespace_import":
			info.IsNamespace = true
			nc := child.ChildCount()
			for j := uint(0); j < nc; j++ {
				if nsChild := child.Child(j); nsChild != nil && nsChild.Kind() == "identifier" {
					info.Symbols = append(info.Symbols, nsChild.Utf8Text(source))
				}
			}
		case "named_imports":
			parseNamedImports(child, source, info)
		}
	}
}

func parseNamedImports(named *ts.Node, source []byte, info *model.ImportInfo) {
	count := named.ChildCount()
	for i := uint(0); i < count; i++ {
		child := named.Child(i)
		if child == nil || child.Kind() != "import_specifier" {
			continue
		}
		sc := child.ChildCount()
		for j := uint(0); j < sc; j++ {
			if specChild := child.Child(j); specChild != nil && specChild.Kind() == "identifier" {
				info.Symbols = append(info.Symbols, specChild.Utf8Text(source))
				break
			}
		}
	}
}

func parseExport(node *ts.Node, source []byte) []model.ExportInfo {
	var exports []model.ExportInfo
	isDefault := false

	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "default":
			isDefault = true
		case "function_declaration":
			if name := firstNameOf(child, source, "identifier", "type_identifier"); name != "" {
				exports = append(exports, model.ExportInfo{Name: name, Kind: model.ExportFunction, IsDefault: isDefault})
			}
		case "class_declaration":
			if name := firstNameOf(child, source, "identifier", "type_identifier"); name != "" {
				exports = append(exports, model.ExportInfo{Name: name, Kind: model.ExportClass, IsDefault: isDefault})
			}
		case "interface_declaration":
			if name := firstNameOf(child, source, "type_identifier"); name != "" {
				exports = append(exports, model.ExportInfo{Name: name, Kind: model.ExportInterface, IsDefault: isDefault})
			}
		case "lexical_declaration":
			if name := firstDeclaratorName(child, source); name != "" {
				exports = append(exports, model.ExportInfo{Name: name, Kind: model.ExportVariable, IsDefault: isDefault})
			}
		}
	}
	return exports
}

func firstNameOf(node *ts.Node, source []byte, kinds ...string) string {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		k := child.Kind()
		for _, want := range kinds {
			if k == want {
				return child.Utf8Text(source)
			}
		}
	}
	return ""
}

func firstDeclaratorName(node *ts.Node, source []byte) string {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil || child.Kind() != "variable_declarator" {
			continue
		}
		if name := firstNameOf(child, source, "identifier"); name != "" {
			return name
		}
	}
	return ""
}
