// Package scanner walks a directory tree and collects per-entry metadata
// under configurable ignore and filter rules.
package scanner

import (
	"log/slog"

	"github.com/blackwell-systems/repolens/internal/filter"
)

// FileInfo is the metadata captured for one surviving traversal entry.
type FileInfo struct {
	// Path is the entry path, joined onto the scan root.
	Path string `json:"path"`

	// Name is the final path element.
	Name string `json:"name"`

	// Size is the entry size in bytes as reported by the filesystem.
	Size uint64 `json:"size"`

	// IsDir is true for directories (and followed links to directories).
	IsDir bool `json:"is_dir"`

	// Extension is the part of Name after its last dot, or empty.
	Extension string `json:"extension"`

	// ModifiedTime is the modification time in epoch seconds.
	ModifiedTime uint64 `json:"modified_time"`

	// CreatedTime is the creation time in epoch seconds, 0 when the
	// platform cannot supply it.
	CreatedTime uint64 `json:"created_time"`
}

// ScanConfig configures a single scan. It is read-only during the scan.
type ScanConfig struct {
	// Path is the root of the traversal.
	Path string

	// MaxDepth bounds the traversal; the root is depth 0. Nil means unbounded.
	MaxDepth *int

	// IgnorePatterns are matched against each entry's path relative to the
	// root. Matching directories are pruned.
	IgnorePatterns []string

	// Parallel distributes directories over a worker pool.
	Parallel bool

	// FollowLinks descends into symlinked directories and reports link
	// targets' metadata. When false, links are reported as themselves.
	FollowLinks bool

	// Workers caps the parallel worker pool. Zero means GOMAXPROCS.
	Workers int

	// Filter, when set, is applied to non-directory entries after the
	// ignore patterns.
	Filter *filter.Filter

	// RespectGitignore also excludes entries matched by <root>/.gitignore.
	RespectGitignore bool

	// Logger receives per-entry diagnostics at debug level. Nil discards them.
	Logger *slog.Logger
}

// DefaultScanConfig returns the configuration used when the caller supplies
// nothing: the current directory, unbounded depth, parallel, no link
// following, and the default ignore patterns.
func DefaultScanConfig() ScanConfig {
	patterns := make([]string, len(filter.DefaultIgnorePatterns))
	copy(patterns, filter.DefaultIgnorePatterns)
	return ScanConfig{
		Path:           ".",
		IgnorePatterns: patterns,
		Parallel:       true,
	}
}

// ScanResult is the immutable outcome of a scan.
type ScanResult struct {
	// Files lists every surviving entry, directories included.
	Files []FileInfo `json:"files"`

	// FileCount is the number of non-directory entries.
	FileCount int `json:"file_count"`

	// DirCount is the number of directory entries.
	DirCount int `json:"dir_count"`

	// TotalSize is the sum of non-directory sizes in bytes.
	TotalSize uint64 `json:"total_size"`

	// DurationMs is the wall-clock duration of the scan.
	DurationMs uint64 `json:"duration_ms"`
}

// Depth returns a pointer to d, for use as ScanConfig.MaxDepth.
func Depth(d int) *int {
	return &d
}
