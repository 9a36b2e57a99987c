package symbols

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeindex-go/codeindexer/internal/model"
	"github.com/codeindex-go/codeindexer/internal/parsing"
)

// TestFindInTreeMatchesScenarioS4Definition checks the half of P6/S4 that C9
// alone is responsible for: locating a function's definition and line.
func TestFindInTreeMatchesScenarioS4Definition(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := []byte("export function add(x,y){ return x+y; }")
	tree := ap.Parse("b.ts", model.LangTypeScript, src)
	require.NotNil(t, tree)
	defer tree.Close()

	found, ok := FindInTree(tree.RootNode(), src, "add")
	require.True(t, ok)
	require.Equal(t, model.KindFunction, found.Kind)
	require.Equal(t, 1, found.Line)
	require.Equal(t, "function add(x,y)", found.Signature)
}

func TestFindInTreeReturnsFalseForUnknownSymbol(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := []byte("export function add(x,y){ return x+y; }")
	tree := ap.Parse("b.ts", model.LangTypeScript, src)
	require.NotNil(t, tree)
	defer tree.Close()

	_, ok := FindInTree(tree.RootNode(), src, "subtract")
	require.False(t, ok)
}

func TestFindInTreeFindsSecondLineDeclaration(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := []byte("export function add(x,y){ return x+y; }\nexport function sub(x,y){ return x-y; }")
	tree := ap.Parse("b.ts", model.LangTypeScript, src)
	require.NotNil(t, tree)
	defer tree.Close()

	found, ok := FindInTree(tree.RootNode(), src, "sub")
	require.True(t, ok)
	require.Equal(t, 2, found.Line)
}
