// Package parsing is the parser gateway: it turns file contents and a
// language tag into a parse tree, failing soft on grammar-load or parse
// errors so callers can treat a missing tree as "no declarations found."
package parsing

import (
	"fmt"

	ts "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/codeindex-go/codeindexer/internal/model"
)

// GrammarManager holds the small, fixed set of grammars this engine knows
// about. Unlike a general-purpose language server there is no plugin
// mechanism: new languages are added here and in internal/lang's
// classification tables together.
type GrammarManager struct {
	languages map[model.Language]*ts.Language
	tsx       *ts.Language
}

// NewGrammarManager constructs the registry, loading the TypeScript, TSX and
// Rust grammars. TSX is kept apart from the languages map since it shares a
// language tag with plain TypeScript at the walker level but needs its own
// grammar here.
func NewGrammarManager() *GrammarManager {
	gm := &GrammarManager{languages: make(map[model.Language]*ts.Language)}
	gm.languages[model.LangTypeScript] = ts.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	gm.languages[model.LangRust] = ts.NewLanguage(tree_sitter_rust.Language())
	gm.tsx = ts.NewLanguage(tree_sitter_typescript.LanguageTSX())
	return gm
}

// TSX returns the TSX grammar.
func (gm *GrammarManager) TSX() *ts.Language {
	return gm.tsx
}

// Language returns the grammar for a language tag, or an error if the tag
// has no registered grammar (language tags other than ts/rs never reach
// here — the walker filters them out first).
func (gm *GrammarManager) Language(lang model.Language) (*ts.Language, error) {
	grammar, ok := gm.languages[lang]
	if !ok {
		return nil, fmt.Errorf("parsing: no grammar registered for language %q", lang)
	}
	return grammar, nil
}
