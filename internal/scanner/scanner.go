package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	gitignore "github.com/monochromegane/go-gitignore"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/repolens/internal/filter"
)

// ErrPathNotFound is returned when the scan root does not exist.
var ErrPathNotFound = errors.New("path does not exist")

// ErrCanceled is returned when the scan context is cancelled before the
// traversal completes. No partial result accompanies it.
var ErrCanceled = errors.New("scan canceled")

// Scan walks the tree rooted at cfg.Path and returns the surviving entries
// with their aggregates. cfg.Parallel selects the execution mode; both modes
// produce the same counts and sizes and differ only in entry order.
func Scan(ctx context.Context, cfg ScanConfig) (*ScanResult, error) {
	start := time.Now()

	rootInfo, err := os.Stat(cfg.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, cfg.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading scan root: %w", err)
	}

	w := newWalker(ctx, cfg)

	var files []FileInfo
	if cfg.Parallel {
		files, err = w.runParallel(rootInfo)
	} else {
		files, err = w.runSequential(rootInfo)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
		}
		return nil, err
	}

	result := aggregate(files)
	result.DurationMs = uint64(time.Since(start).Milliseconds())

	w.log.Debug("scan complete",
		"root", cfg.Path,
		"parallel", cfg.Parallel,
		"files", result.FileCount,
		"dirs", result.DirCount,
		"bytes", result.TotalSize,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

// ScanSequential scans on the calling goroutine in deterministic order.
func ScanSequential(ctx context.Context, cfg ScanConfig) (*ScanResult, error) {
	cfg.Parallel = false
	return Scan(ctx, cfg)
}

// ScanParallel scans with a worker pool.
func ScanParallel(ctx context.Context, cfg ScanConfig) (*ScanResult, error) {
	cfg.Parallel = true
	return Scan(ctx, cfg)
}

// aggregate computes counts and sizes once over the final entry list.
func aggregate(files []FileInfo) *ScanResult {
	if files == nil {
		files = []FileInfo{}
	}
	r := &ScanResult{Files: files}
	for _, f := range files {
		if f.IsDir {
			r.DirCount++
			continue
		}
		r.FileCount++
		r.TotalSize += f.Size
	}
	return r
}

// walker holds the read-only state shared by every unit of traversal work.
type walker struct {
	ctx       context.Context
	cfg       ScanConfig
	ignore    filter.Matcher
	gitignore gitignore.IgnoreMatcher
	log       *slog.Logger
}

func newWalker(ctx context.Context, cfg ScanConfig) *walker {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w := &walker{
		ctx:    ctx,
		cfg:    cfg,
		ignore: filter.NewMatcher(cfg.IgnorePatterns),
		log:    log,
	}

	if cfg.RespectGitignore {
		gitIgnorePath := filepath.Join(cfg.Path, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				log.Warn("could not parse .gitignore", "path", gitIgnorePath, "err", err)
			} else {
				w.gitignore = matcher
			}
		}
	}

	return w
}

// dirTask is one directory still to be read. ancestors is only tracked
// when links are followed.
type dirTask struct {
	path      string
	rel       string
	depth     int
	ancestors ancestry
}

// child is one surviving entry of a directory, plus the directory task to
// descend into when the entry is a traversable directory.
type child struct {
	info    FileInfo
	descend *dirTask
}

func (w *walker) rootEntry(rootInfo os.FileInfo) (FileInfo, *dirTask) {
	root := newFileInfo(w.cfg.Path, rootInfo, true)
	if !rootInfo.IsDir() {
		return root, nil
	}
	task := &dirTask{path: w.cfg.Path, rel: "", depth: 0}
	if w.cfg.FollowLinks {
		task.ancestors = ancestry(nil).with(w.cfg.Path, rootInfo)
	}
	return root, task
}

func (w *walker) runSequential(rootInfo os.FileInfo) ([]FileInfo, error) {
	root, task := w.rootEntry(rootInfo)
	files := []FileInfo{root}
	if task == nil {
		return files, nil
	}

	var walk func(t dirTask) error
	walk = func(t dirTask) error {
		children, err := w.readDir(w.ctx, t)
		if err != nil {
			return err
		}
		for _, c := range children {
			files = append(files, c.info)
			if c.descend != nil {
				if err := walk(*c.descend); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := walk(*task); err != nil {
		return nil, err
	}
	return files, nil
}

// runParallel treats each directory as a unit of work. Subdirectories are
// handed to a free worker when one is available and read inline otherwise,
// so a saturated pool never blocks a worker on its own children.
func (w *walker) runParallel(rootInfo os.FileInfo) ([]FileInfo, error) {
	root, task := w.rootEntry(rootInfo)
	if task == nil {
		return []FileInfo{root}, nil
	}

	workers := w.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(w.ctx)
	g.SetLimit(workers)

	var (
		mu    sync.Mutex
		files = []FileInfo{root}
	)

	var visit func(t dirTask) error
	visit = func(t dirTask) error {
		children, err := w.readDir(ctx, t)
		if err != nil {
			return err
		}

		local := make([]FileInfo, 0, len(children))
		var subdirs []dirTask
		for _, c := range children {
			local = append(local, c.info)
			if c.descend != nil {
				subdirs = append(subdirs, *c.descend)
			}
		}

		mu.Lock()
		files = append(files, local...)
		mu.Unlock()

		for _, sd := range subdirs {
			sd := sd
			if g.TryGo(func() error { return visit(sd) }) {
				continue
			}
			if err := visit(sd); err != nil {
				return err
			}
		}
		return nil
	}

	g.Go(func() error { return visit(*task) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
