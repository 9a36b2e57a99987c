package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeindex-go/codeindexer/internal/model"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestCollectTagsLanguageAndSkipsUnknownExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ts"))
	writeFile(t, filepath.Join(root, "b.tsx"))
	writeFile(t, filepath.Join(root, "c.rs"))
	writeFile(t, filepath.Join(root, "README.md"))

	files, err := Collect(root)
	require.NoError(t, err)
	require.Len(t, files, 3)

	byPath := make(map[string]model.Language)
	for _, f := range files {
		byPath[filepath.Base(f.Path)] = f.Language
	}
	require.Equal(t, model.LangTypeScript, byPath["a.ts"])
	require.Equal(t, model.LangTypeScript, byPath["b.tsx"])
	require.Equal(t, model.LangRust, byPath["c.rs"])
}

func TestCollectPrunesHiddenAndBuildOutputDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "keep.ts"))
	writeFile(t, filepath.Join(root, ".git", "skip.ts"))
	writeFile(t, filepath.Join(root, "node_modules", "skip.ts"))
	writeFile(t, filepath.Join(root, "target", "skip.rs"))
	writeFile(t, filepath.Join(root, "dist", "skip.ts"))

	files, err := Collect(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "keep.ts", filepath.Base(files[0].Path))
}

func TestIsHidden(t *testing.T) {
	require.False(t, isHidden("."))
	require.False(t, isHidden("src"))
	require.True(t, isHidden(".git"))
	require.True(t, isHidden("node_modules"))
	require.True(t, isHidden("target"))
	require.True(t, isHidden("dist"))
}
