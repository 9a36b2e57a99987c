package parsing

import (
	"path/filepath"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codeindex-go/codeindexer/internal/model"
)

// ASTProvider is the parser gateway proper: parse(content, lang) -> tree|nil.
// Parsers are not safe for concurrent use, so each call takes a parser from
// a sync.Pool (reusing one that an earlier call returned, or creating a new
// one) and holds it alone until it returns; callers that parse many files
// concurrently (the per-query errgroup fan-out) each get their own instance
// transparently.
type ASTProvider struct {
	grammars *GrammarManager
	pool     sync.Pool
}

// NewASTProvider builds a provider backed by the given grammar registry.
func NewASTProvider(gm *GrammarManager) *ASTProvider {
	return &ASTProvider{
		grammars: gm,
		pool: sync.Pool{
			New: func() interface{} { return ts.NewParser() },
		},
	}
}

// Parse produces a tree for source under the given language tag and file
// path (the path's extension disambiguates TSX from plain TypeScript; it is
// not read from disk here). Returns nil on grammar-load failure — callers
// must treat a nil tree as "no declarations found" and continue, per the
// gateway's fail-soft contract. The returned tree must be closed by the
// caller.
func (ap *ASTProvider) Parse(path string, lang model.Language, source []byte) *ts.Tree {
	grammar, err := ap.languageFor(path, lang)
	if err != nil {
		return nil
	}

	parser, ok := ap.pool.Get().(*ts.Parser)
	if !ok || parser == nil {
		return nil
	}
	defer ap.pool.Put(parser)

	if err := parser.SetLanguage(grammar); err != nil {
		return nil
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil
	}
	return tree
}

func (ap *ASTProvider) languageFor(path string, lang model.Language) (*ts.Language, error) {
	if lang == model.LangTypeScript && filepath.Ext(path) == ".tsx" {
		return ap.grammars.TSX(), nil
	}
	return ap.grammars.Language(lang)
}
