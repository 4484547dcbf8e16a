//go:build !unix

package scanner

import (
	"io/fs"
	"path/filepath"
)

// identity falls back to the fully resolved absolute path where inode
// numbers are not exposed.
func identity(path string, _ fs.FileInfo) (string, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", false
	}
	return abs, true
}
