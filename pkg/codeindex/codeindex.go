// Package codeindex is the public library surface: the seven query
// primitives a host runtime (editor, LLM context builder, review bot)
// invokes to navigate a polyglot TypeScript/Rust workspace. Every entry
// point is synchronous from the caller's perspective and borrows its parsers
// from the engine's pool per call; there is no result or tree cache, no
// on-disk state, and no
// configuration — callers pass a workspace root and get a value back.
package codeindex

import (
	"os"
	"strings"
	"unicode/utf8"

	ts "github.com/tree-sitter/go-tree-sitter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/codeindex-go/codeindexer/internal/graph"
	"github.com/codeindex-go/codeindexer/internal/imports"
	"github.com/codeindex-go/codeindexer/internal/model"
	"github.com/codeindex-go/codeindexer/internal/parsing"
	"github.com/codeindex-go/codeindexer/internal/references"
	"github.com/codeindex-go/codeindexer/internal/resolve"
	"github.com/codeindex-go/codeindexer/internal/search"
	"github.com/codeindex-go/codeindexer/internal/skeleton"
	"github.com/codeindex-go/codeindexer/internal/symbols"
	"github.com/codeindex-go/codeindexer/internal/workspace"
)

// Engine is the entry point host. It owns the grammar registry and a
// parser pool that queries borrow from; neither holds any per-query state,
// so a single Engine can safely serve concurrent queries from multiple
// goroutines as long as the underlying workspace is not being mutated
// concurrently.
type Engine struct {
	ast *parsing.ASTProvider
	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger wires a structured logger; callers that never call this get a
// no-op logger, matching the "logging is diagnostic, never part of a
// return value" rule.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine builds an Engine ready to serve queries.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		ast: parsing.NewASTProvider(parsing.NewGrammarManager()),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// parsedFile is a file read into memory and parsed, ready for a single
// query's traversal. Nil means the file was silently skipped (I/O error,
// non-UTF-8 content, parse failure, or unsupported language).
type parsedFile struct {
	path   string
	lang   model.Language
	source []byte
	tree   *ts.Tree
}

func (e *Engine) readAndParse(f workspace.File) *parsedFile {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		e.log.Debug("skip file: read error", zap.String("path", f.Path), zap.Error(err))
		return nil
	}
	if !utf8.Valid(content) {
		e.log.Debug("skip file: not valid utf-8", zap.String("path", f.Path))
		return nil
	}
	tree := e.ast.Parse(f.Path, f.Language, content)
	if tree == nil {
		e.log.Debug("skip file: parse failure", zap.String("path", f.Path))
		return nil
	}
	return &parsedFile{path: f.Path, lang: f.Language, source: content, tree: tree}
}

// forEachFile walks root, reads and parses every file concurrently (each
// goroutine owns its own parser instance via the pool), and invokes fn once
// per successfully parsed file in walker order. Trees are closed after fn
// returns for that file.
func (e *Engine) forEachFile(root string, fn func(*parsedFile)) error {
	files, err := workspace.Collect(root)
	if err != nil {
		return err
	}

	parsed := make([]*parsedFile, len(files))
	var g errgroup.Group
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			parsed[i] = e.readAndParse(f)
			return nil
		})
	}
	_ = g.Wait()

	for _, pf := range parsed {
		if pf == nil {
			continue
		}
		fn(pf)
		pf.tree.Close()
	}
	return nil
}

// GenerateRepoMap concatenates, for every source-language file under root,
// a "\n---\nFile: <path>\n" header and that file's declaration skeleton, in
// walker order.
func (e *Engine) GenerateRepoMap(root string) string {
	var b strings.Builder
	_ = e.forEachFile(root, func(pf *parsedFile) {
		b.WriteString("\n---\nFile: ")
		b.WriteString(pf.path)
		b.WriteString("\n")
		b.WriteString(skeleton.Build(pf.tree.RootNode(), pf.source))
	})
	return b.String()
}

// Search scores every declaration under root against query and returns the
// top 10 by descending score. forEachFile invokes its callback sequentially
// in walker order even though file reads and parses happen concurrently, so
// appending here needs no synchronization.
func (e *Engine) Search(root, query string) []model.SearchResult {
	var perFile [][]model.SearchResult
	_ = e.forEachFile(root, func(pf *parsedFile) {
		perFile = append(perFile, search.ScanFile(pf.path, pf.tree.RootNode(), pf.source, query))
	})
	return search.Top(perFile)
}

// GetSymbolInfo parses file and returns the first declaration named symbol,
// or nil if file cannot be parsed or no matching declaration exists.
func (e *Engine) GetSymbolInfo(file, symbol string) *model.SymbolInfo {
	pf := e.readSingle(file)
	if pf == nil {
		return nil
	}
	defer pf.tree.Close()

	found, ok := symbols.FindInTree(pf.tree.RootNode(), pf.source, symbol)
	if !ok {
		return nil
	}
	return &model.SymbolInfo{
		Name:      symbol,
		Kind:      found.Kind,
		Signature: found.Signature,
		Line:      uint32(found.Line),
		File:      file,
	}
}

// GetImportsExports parses a TypeScript file and returns its import and
// export model, or nil for a non-TypeScript file or one that cannot be
// parsed.
func (e *Engine) GetImportsExports(file string) *model.ImportsExports {
	if !isTypeScriptPath(file) {
		return nil
	}
	pf := e.readSingle(file)
	if pf == nil {
		return nil
	}
	defer pf.tree.Close()

	result := imports.Extract(pf.tree.RootNode(), pf.source)
	return &result
}

// BuildDependencyGraph walks every TypeScript file under root and builds
// the directed file-dependency graph, or nil if root does not exist.
func (e *Engine) BuildDependencyGraph(root string) *model.DependencyGraph {
	if _, err := os.Stat(root); err != nil {
		return nil
	}

	b := graph.NewBuilder()
	_ = e.forEachFile(root, func(pf *parsedFile) {
		if pf.lang != model.LangTypeScript {
			return
		}
		ie := imports.Extract(pf.tree.RootNode(), pf.source)
		exportNames := make([]string, 0, len(ie.Exports))
		for _, exp := range ie.Exports {
			exportNames = append(exportNames, exp.Name)
		}
		b.AddFile(pf.path, exportNames, ie.Imports)
	})
	g := b.Graph()
	return &g
}

// ResolveSymbol resolves symbol starting from file: a local declaration
// first, then one hop through file's imports. Returns nil if nothing
// matches.
func (e *Engine) ResolveSymbol(symbol, file string) *model.SymbolLocation {
	pf := e.readSingle(file)
	if pf == nil {
		return nil
	}
	defer pf.tree.Close()

	if found, ok := symbols.FindInTree(pf.tree.RootNode(), pf.source, symbol); ok {
		return &model.SymbolLocation{
			File:     file,
			Line:     found.Line,
			Column:   0,
			Kind:     found.Kind,
			External: false,
		}
	}

	if !isTypeScriptPath(file) {
		return nil
	}
	ie := imports.Extract(pf.tree.RootNode(), pf.source)
	for _, imp := range ie.Imports {
		if !importBinds(imp, symbol) {
			continue
		}
		if resolve.IsExternal(imp.Source) {
			return &model.SymbolLocation{Kind: model.KindImport, External: true, Package: imp.Source}
		}
		target := resolve.Resolve(file, imp.Source)
		if tpf := e.readSingle(target); tpf != nil {
			defer tpf.tree.Close()
			if found, ok := symbols.FindInTree(tpf.tree.RootNode(), tpf.source, symbol); ok {
				return &model.SymbolLocation{
					File: target, Line: found.Line, Column: 0, Kind: found.Kind, External: false,
				}
			}
		}
		return &model.SymbolLocation{File: target, Line: 0, Kind: model.KindImport, External: false}
	}
	return nil
}

// importBinds reports whether name is one of the local bindings introduced
// by imp — either a named/default symbol, or the namespace binding itself.
func importBinds(imp model.ImportInfo, name string) bool {
	for _, s := range imp.Symbols {
		if s == name {
			return true
		}
	}
	return false
}

// FindReferences enumerates every identifier occurrence equal to symbol
// across TypeScript files under root, in walker order. Returns an empty
// slice if root does not exist.
func (e *Engine) FindReferences(symbol, root string) []model.Reference {
	var refs []model.Reference
	_ = e.forEachFile(root, func(pf *parsedFile) {
		if pf.lang != model.LangTypeScript {
			return
		}
		refs = append(refs, references.Find(pf.path, pf.tree.RootNode(), pf.source, symbol)...)
	})
	return refs
}

func (e *Engine) readSingle(path string) *parsedFile {
	lang, ok := languageOf(path)
	if !ok {
		return nil
	}
	return e.readAndParse(workspace.File{Path: path, Language: lang})
}

func languageOf(path string) (model.Language, bool) {
	switch {
	case strings.HasSuffix(path, ".ts"), strings.HasSuffix(path, ".tsx"):
		return model.LangTypeScript, true
	case strings.HasSuffix(path, ".rs"):
		return model.LangRust, true
	default:
		return "", false
	}
}

func isTypeScriptPath(path string) bool {
	l, ok := languageOf(path)
	return ok && l == model.LangTypeScript
}
