// Package resolve implements the module resolver (C8): mapping a relative
// module specifier found in a source file to a canonical on-disk path.
package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// IsExternal reports whether a module specifier is external — one that does
// not start with "." or "/", and so is never resolved to a file.
func IsExternal(specifier string) bool {
	if specifier == "" {
		return true
	}
	return !strings.HasPrefix(specifier, ".") && !strings.HasPrefix(specifier, "/")
}

// Resolve maps a specifier imported from fromFile to a canonical path: the
// directory of fromFile joined with the specifier, tried as-is, then with a
// ".ts" suffix, then as "<candidate>/index.ts". If none exist on disk the
// unresolved joined path is returned as-is — there is no package.json
// exports map, no tsconfig path mapping, no .tsx fallback.
func Resolve(fromFile, specifier string) string {
	dir := filepath.Dir(fromFile)
	if dir == "" {
		dir = "."
	}
	candidate := filepath.Join(dir, specifier)

	if exists(candidate) {
		return candidate
	}
	withExt := candidate + ".ts"
	if exists(withExt) {
		return withExt
	}
	indexed := filepath.Join(candidate, "index.ts")
	if exists(indexed) {
		return indexed
	}
	return candidate
}

// exists reports whether path names an existing entry that is not a
// directory, so a specifier naming a directory falls through to the ".ts"
// and "index.ts" candidates.
func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
