// Package model holds the shared data types produced and consumed by the
// indexing components: declaration kinds, locations, import/export records
// and the dependency graph. Every type here is a plain value — nothing in
// this package owns a parse tree or touches the filesystem.
package model

// Position is a 1-based line paired with a 0-based column, matching the
// public entry points' documented units.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Language is the file-identity tag assigned by the workspace walker.
type Language string

const (
	LangTypeScript Language = "ts"
	LangRust       Language = "rs"
	LangOther      Language = "other"
)

// SymbolKind is the exposed kind of a declaration, per the node-kind table.
type SymbolKind string

const (
	KindFunction  SymbolKind = "function"
	KindClass     SymbolKind = "class"
	KindInterface SymbolKind = "interface"
	KindMethod    SymbolKind = "method"
	KindVariable  SymbolKind = "variable"
	KindStruct    SymbolKind = "struct"
	KindTrait     SymbolKind = "trait"
	KindImpl      SymbolKind = "impl"
	KindField     SymbolKind = "field"
	KindImport    SymbolKind = "import"
)

// Symbol is a single resolved declaration: name, kind, signature, and the
// 1-based line on which it starts.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Signature string
	File      string
	Line      int
}

// ImportInfo is one import_statement, reduced to the fields C9/C11 need.
type ImportInfo struct {
	Source      string
	Symbols     []string
	IsDefault   bool
	IsNamespace bool
}

// ExportKind is the closed set of export kinds C7 recognizes.
type ExportKind string

const (
	ExportFunction  ExportKind = "function"
	ExportClass     ExportKind = "class"
	ExportVariable  ExportKind = "variable"
	ExportInterface ExportKind = "interface"
)

// ExportInfo is one exported name discovered inside an export_statement.
type ExportInfo struct {
	Name      string
	Kind      ExportKind
	IsDefault bool
}

// ImportsExports is the return shape of get_imports_exports.
type ImportsExports struct {
	Imports []ImportInfo
	Exports []ExportInfo
}

// SearchResult is one ranked hit from the fuzzy ranker.
type SearchResult struct {
	File         string
	Line         uint32
	MatchContent string
	Score        int64
}

// SymbolInfo is the return shape of get_symbol_info.
type SymbolInfo struct {
	Name      string
	Kind      SymbolKind
	Signature string
	Line      uint32
	File      string
}

// SymbolLocation is the return shape of resolve_symbol: either a local
// declaration (External=false) or an opaque external package reference.
type SymbolLocation struct {
	File     string
	Line     int
	Column   int
	Kind     SymbolKind
	External bool
	Package  string
}

// Reference is one identifier occurrence found by the reference finder.
type Reference struct {
	File         string
	Line         int
	Column       int
	Context      string
	IsDefinition bool
}

// DependencyNode is one file in the dependency graph, with its export list.
type DependencyNode struct {
	File    string
	Exports []string
}

// DependencyEdge is one resolved (or external) import edge between files.
type DependencyEdge struct {
	From     string
	To       string
	Symbols  []string
	External bool
}

// DependencyGraph is the return shape of build_dependency_graph.
type DependencyGraph struct {
	Nodes []DependencyNode
	Edges []DependencyEdge
}
