package imports

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeindex-go/codeindexer/internal/model"
	"github.com/codeindex-go/codeindexer/internal/parsing"
)

func TestExtractMatchesScenarioS3(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := []byte(`import Foo, { bar, baz as qux } from "./lib";
import * as N from "util";`)
	tree := ap.Parse("m.ts", model.LangTypeScript, src)
	require.NotNil(t, tree)
	defer tree.Close()

	result := Extract(tree.RootNode(), src)
	require.Len(t, result.Imports, 2)

	first := result.Imports[0]
	require.Equal(t, "./lib", first.Source)
	require.ElementsMatch(t, []string{"Foo", "bar", "baz"}, first.Symbols)
	require.True(t, first.IsDefault)
	require.False(t, first.IsNamespace)

	second := result.Imports[1]
	require.Equal(t, "util", second.Source)
	require.Equal(t, []string{"N"}, second.Symbols)
	require.False(t, second.IsDefault)
	require.True(t, second.IsNamespace)
}

func TestExtractExports(t *testing.T) {
	ap := parsing.NewASTProvider(parsing.NewGrammarManager())
	src := []byte(`export function add(x: number, y: number) { return x + y; }
export class Widget {}
export interface Props {}
export const count = 1;
export default function main() {}`)
	tree := ap.Parse("e.ts", model.LangTypeScript, src)
	require.NotNil(t, tree)
	defer tree.Close()

	result := Extract(tree.RootNode(), src)

	byName := make(map[string]model.ExportInfo)
	for _, e := range result.Exports {
		byName[e.Name] = e
	}

	require.Equal(t, model.ExportFunction, byName["add"].Kind)
	require.False(t, byName["add"].IsDefault)
	require.Equal(t, model.ExportClass, byName["Widget"].Kind)
	require.Equal(t, model.ExportInterface, byName["Props"].Kind)
	require.Equal(t, model.ExportVariable, byName["count"].Kind)
	require.True(t, byName["main"].IsDefault)

	for _, e := range result.Exports {
		require.NotEmpty(t, e.Name)
		require.Contains(t, []model.ExportKind{
			model.ExportFunction, model.ExportClass, model.ExportVariable, model.ExportInterface,
		}, e.Kind)
	}
}
