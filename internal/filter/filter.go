// Package filter decides which traversal entries are excluded from a scan,
// using size bounds, an extension allow-list and ignore patterns.
package filter

import (
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/repolens/internal/classify"
)

// DefaultIgnorePatterns covers dependency directories, build output, VCS
// metadata, IDE directories, temp/cache directories and OS housekeeping files.
var DefaultIgnorePatterns = []string{
	// Dependencies.
	"node_modules",
	"bower_components",
	"vendor",
	"packages",

	// Build output.
	"target",
	"build",
	"dist",
	"out",
	".next",
	".nuxt",

	// Version control.
	".git",
	".svn",
	".hg",

	// IDE.
	".idea",
	".vscode",
	".vs",

	// Temp and cache.
	"tmp",
	"temp",
	".cache",

	// OS housekeeping.
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
}

// Filter is an immutable exclusion rule set. The zero value excludes nothing.
// Build one with NewBuilder or NewEmptyBuilder.
type Filter struct {
	matcher    Matcher
	minSize    uint64
	hasMin     bool
	maxSize    uint64
	hasMax     bool
	extensions map[string]struct{}
}

// Default returns a filter with DefaultIgnorePatterns and no size or
// extension limits.
func Default() Filter {
	return NewBuilder().Build()
}

// ShouldExclude reports whether an entry at path with the given size is
// excluded. Checks run in order and stop at the first hit: minimum size,
// maximum size, extension allow-list, ignore patterns.
func (f Filter) ShouldExclude(path string, size uint64) bool {
	if f.hasMin && size < f.minSize {
		return true
	}
	if f.hasMax && size > f.maxSize {
		return true
	}
	if f.extensions != nil {
		ext := classify.Extension(filepath.Base(path))
		if ext == "" {
			return true
		}
		if _, ok := f.extensions[ext]; !ok {
			return true
		}
	}
	return f.matcher.Match(path)
}

// Matcher returns the filter's compiled ignore patterns.
func (f Filter) Matcher() Matcher {
	return f.matcher
}

// MinSize returns the minimum size bound and whether one is set.
func (f Filter) MinSize() (uint64, bool) {
	return f.minSize, f.hasMin
}

// MaxSize returns the maximum size bound and whether one is set.
func (f Filter) MaxSize() (uint64, bool) {
	return f.maxSize, f.hasMax
}

// Builder assembles a Filter with chained calls. A Builder is not safe for
// concurrent use; the Filter it builds is.
type Builder struct {
	patterns   []string
	minSize    *uint64
	maxSize    *uint64
	extensions []string
	hasExts    bool
}

// NewBuilder starts from DefaultIgnorePatterns.
func NewBuilder() *Builder {
	patterns := make([]string, len(DefaultIgnorePatterns))
	copy(patterns, DefaultIgnorePatterns)
	return &Builder{patterns: patterns}
}

// NewEmptyBuilder starts with no ignore patterns.
func NewEmptyBuilder() *Builder {
	return &Builder{}
}

// AddPattern appends an ignore pattern.
func (b *Builder) AddPattern(p string) *Builder {
	b.patterns = append(b.patterns, p)
	return b
}

// Patterns replaces the ignore patterns.
func (b *Builder) Patterns(ps []string) *Builder {
	b.patterns = append([]string(nil), ps...)
	return b
}

// MinSize excludes entries smaller than n bytes.
func (b *Builder) MinSize(n uint64) *Builder {
	b.minSize = &n
	return b
}

// MaxSize excludes entries larger than n bytes.
func (b *Builder) MaxSize(n uint64) *Builder {
	b.maxSize = &n
	return b
}

// Extensions restricts entries to the given extensions. A leading dot is
// accepted and ignored.
// Entries with no extension are excluded once an allow-list is set.
func (b *Builder) Extensions(exts []string) *Builder {
	b.extensions = append([]string(nil), exts...)
	b.hasExts = true
	return b
}

// Build returns the Filter. Later calls on b do not affect it.
func (b *Builder) Build() Filter {
	f := Filter{matcher: NewMatcher(b.patterns)}
	if b.minSize != nil {
		f.minSize, f.hasMin = *b.minSize, true
	}
	if b.maxSize != nil {
		f.maxSize, f.hasMax = *b.maxSize, true
	}
	if b.hasExts {
		f.extensions = make(map[string]struct{}, len(b.extensions))
		for _, e := range b.extensions {
			f.extensions[strings.TrimPrefix(e, ".")] = struct{}{}
		}
	}
	return f
}
