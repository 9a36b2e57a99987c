// Package workspace enumerates the files under a root path, pruning hidden
// directories and known build-output directories, and tags each regular
// file with a language identity.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/codeindex-go/codeindexer/internal/model"
)

// File is one walked entry: its path (as returned by filepath.Walk, so
// relative to root only if root itself was relative) and its language tag.
type File struct {
	Path     string
	Language model.Language
}

var prunedDirNames = map[string]bool{
	"node_modules": true,
	"target":       true,
	"dist":         true,
}

var extToLanguage = map[string]model.Language{
	".ts":  model.LangTypeScript,
	".tsx": model.LangTypeScript,
	".rs":  model.LangRust,
}

// isHidden reports whether a directory entry must be pruned with its whole
// subtree: a dotfile basename (except the literal "." entry itself) or one
// of the recognized build-output directory names.
func isHidden(name string) bool {
	if name == "." {
		return false
	}
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	return prunedDirNames[name]
}

// Walk enumerates every regular file under root in pre-order, deterministic
// directory-tree order, invoking fn for each file whose extension maps to a
// known language tag. Files of unrecognized language are never passed to fn.
// I/O errors encountered along the way (permission denied, broken symlinks,
// unreadable entries) are silently skipped — a single bad entry never aborts
// the walk.
func Walk(root string, fn func(File) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		base := filepath.Base(path)
		if info.IsDir() {
			if isHidden(base) {
				return filepath.SkipDir
			}
			return nil
		}
		lang, ok := extToLanguage[filepath.Ext(path)]
		if !ok {
			return nil
		}
		return fn(File{Path: path, Language: lang})
	})
}

// Collect runs Walk and returns every matched file in walker order.
func Collect(root string) ([]File, error) {
	var files []File
	err := Walk(root, func(f File) error {
		files = append(files, f)
		return nil
	})
	return files, err
}
