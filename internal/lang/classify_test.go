package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/codeindex-go/codeindexer/internal/model"
	"github.com/codeindex-go/codeindexer/internal/parsing"
)

func parseTS(t *testing.T, source string) []byte {
	t.Helper()
	return []byte(source)
}

func findFirstByKind(node *ts.Node, kind string) *ts.Node {
	if node == nil {
		return nil
	}
	if node.Kind() == kind {
		return node
	}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		if found := findFirstByKind(node.Child(i), kind); found != nil {
			return found
		}
	}
	return nil
}

func TestClassifyFunctionDeclaration(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := parseTS(t, "export function add(x: number, y: number) { return x+y; }")
	tree := ap.Parse("a.ts", model.LangTypeScript, src)
	require.NotNil(t, tree)
	defer tree.Close()

	node := findFirstByKind(tree.RootNode(), "function_declaration")
	require.NotNil(t, node)

	isDecl, kind, _ := Classify(node)
	require.True(t, isDecl)
	require.Equal(t, model.KindFunction, kind)
}

func TestClassifyRustStructItem(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := parseTS(t, "struct Point { x: i32, y: i32 }")
	tree := ap.Parse("a.rs", model.LangRust, src)
	require.NotNil(t, tree)
	defer tree.Close()

	node := findFirstByKind(tree.RootNode(), "struct_item")
	require.NotNil(t, node)

	isDecl, kind, isContainer := Classify(node)
	require.True(t, isDecl)
	require.Equal(t, model.KindStruct, kind)
	require.True(t, isContainer)
}

func TestIsContainer(t *testing.T) {
	require.True(t, IsContainer("program"))
	require.True(t, IsContainer("class_body"))
	require.False(t, IsContainer("function_declaration"))
}

func TestSignatureTrimsAtFirstBrace(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := parseTS(t, "function add(x: number, y: number) { return x + y; }")
	tree := ap.Parse("a.ts", model.LangTypeScript, src)
	require.NotNil(t, tree)
	defer tree.Close()

	node := findFirstByKind(tree.RootNode(), "function_declaration")
	require.NotNil(t, node)

	sig := Signature(node, src)
	require.NotContains(t, sig, "{")
	require.Equal(t, "function add(x: number, y: number)", sig)
}

func TestNameExtractsIdentifier(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := parseTS(t, "function greet(name: string) { return name; }")
	tree := ap.Parse("a.ts", model.LangTypeScript, src)
	require.NotNil(t, tree)
	defer tree.Close()

	node := findFirstByKind(tree.RootNode(), "function_declaration")
	require.NotNil(t, node)
	require.Equal(t, "greet", Name(node, src))
}
