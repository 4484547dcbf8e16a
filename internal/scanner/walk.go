package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// readDir reads one directory and returns its surviving children in name
// order. Entries whose metadata cannot be read are dropped; an unreadable
// directory yields whatever entries were listed before the failure. The only
// error returned is context cancellation.
func (w *walker) readDir(ctx context.Context, t dirTask) ([]child, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	depth := t.depth + 1
	if w.cfg.MaxDepth != nil && depth > *w.cfg.MaxDepth {
		return nil, nil
	}

	entries, err := os.ReadDir(t.path)
	if err != nil {
		w.log.Debug("reading directory", "path", t.path, "err", err)
	}

	children := make([]child, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, ok := w.visit(entry, t, depth)
		if ok {
			children = append(children, c)
		}
	}
	return children, nil
}

// visit classifies one directory entry and decides whether it survives.
func (w *walker) visit(entry fs.DirEntry, parent dirTask, depth int) (child, bool) {
	name := entry.Name()
	path := filepath.Join(parent.path, name)
	rel := filepath.Join(parent.rel, name)

	if w.ignore.Match(rel) {
		return child{}, false
	}

	var (
		info    fs.FileInfo
		err     error
		follow  bool
		descend bool
	)

	switch kindOf(entry.Type()) {
	case kindDir:
		info, err = entry.Info()
		descend = true

	case kindSymlink:
		if !w.cfg.FollowLinks {
			info, err = entry.Info()
			break
		}
		info, err = os.Stat(path)
		follow = true
		if err == nil && info.IsDir() {
			if parent.ancestors.contains(path, info) {
				w.log.Debug("skipping link to ancestor directory", "path", path)
				return child{}, false
			}
			descend = true
		}

	case kindFile, kindOther:
		info, err = entry.Info()
	}

	if err != nil {
		w.log.Debug("dropping entry", "path", path, "err", err)
		return child{}, false
	}

	isDir := info.IsDir()
	if w.gitignore != nil && w.gitignore.Match(path, isDir) {
		return child{}, false
	}

	fi := newFileInfo(path, info, follow)
	if !isDir && w.cfg.Filter != nil && w.cfg.Filter.ShouldExclude(rel, fi.Size) {
		return child{}, false
	}

	c := child{info: fi}
	if descend {
		c.descend = &dirTask{path: path, rel: rel, depth: depth}
		if w.cfg.FollowLinks {
			c.descend.ancestors = parent.ancestors.with(path, info)
		}
	}
	return c, true
}

// ancestry is the chain of directory identities from the root down to a
// directory. A followed link is descended unless its target is on the
// chain, so the result does not depend on the order directories are read.
type ancestry []string

func (a ancestry) contains(path string, info fs.FileInfo) bool {
	id, ok := identity(path, info)
	if !ok {
		return false
	}
	return slices.Contains(a, id)
}

// with returns a new chain extended by the directory at path. The receiver
// is shared by sibling tasks and is never modified.
func (a ancestry) with(path string, info fs.FileInfo) ancestry {
	id, ok := identity(path, info)
	if !ok {
		return a
	}
	out := make(ancestry, len(a), len(a)+1)
	copy(out, a)
	return append(out, id)
}
