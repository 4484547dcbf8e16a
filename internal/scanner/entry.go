package scanner

import (
	"io/fs"
	"path/filepath"

	"github.com/blackwell-systems/repolens/internal/classify"
)

// entryKind is the closed set of entry types the walker dispatches on.
type entryKind int

const (
	kindFile entryKind = iota
	kindDir
	kindSymlink
	kindOther
)

func kindOf(mode fs.FileMode) entryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return kindSymlink
	case mode.IsDir():
		return kindDir
	case mode.IsRegular():
		return kindFile
	default:
		return kindOther
	}
}

// newFileInfo builds the record for path from already-read metadata.
// follow selects whether the created time is read through a link.
func newFileInfo(path string, info fs.FileInfo, follow bool) FileInfo {
	name := info.Name()
	if name == "" || name == string(filepath.Separator) {
		name = filepath.Base(path)
	}

	var size uint64
	if info.Size() > 0 {
		size = uint64(info.Size())
	}

	var mtime uint64
	if ts := info.ModTime().Unix(); ts > 0 {
		mtime = uint64(ts)
	}

	return FileInfo{
		Path:         path,
		Name:         name,
		Size:         size,
		IsDir:        info.IsDir(),
		Extension:    classify.Extension(name),
		ModifiedTime: mtime,
		CreatedTime:  createdTime(path, info, follow),
	}
}
