package filter

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// pattern is one compiled ignore pattern.
type pattern struct {
	raw  string
	glob bool
}

// Matcher tests paths against an ordered list of ignore patterns. Plain
// patterns match as case-sensitive substrings of the path; patterns with
// glob metacharacters are doublestar globs matched against the
// slash-separated path and against its base name.
//
// A Matcher is read-only after construction and safe for concurrent use.
type Matcher struct {
	patterns []pattern
}

// NewMatcher compiles patterns. Empty patterns are dropped, since an empty
// substring would match every path. A glob that does not parse is treated
// as a plain substring.
func NewMatcher(patterns []string) Matcher {
	compiled := make([]pattern, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		isGlob := strings.ContainsAny(p, "*?[{") && doublestar.ValidatePattern(p)
		compiled = append(compiled, pattern{raw: p, glob: isGlob})
	}
	return Matcher{patterns: compiled}
}

// Match reports whether any pattern matches p. p is a rendered path using
// the platform separator; its base name is matched implicitly since it is
// a suffix of the path.
func (m Matcher) Match(p string) bool {
	if len(m.patterns) == 0 {
		return false
	}
	var slashed, base string
	for _, pat := range m.patterns {
		if !pat.glob {
			if strings.Contains(p, pat.raw) {
				return true
			}
			continue
		}
		if slashed == "" {
			slashed = filepath.ToSlash(p)
			base = path.Base(slashed)
		}
		if ok, _ := doublestar.Match(pat.raw, slashed); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat.raw, base); ok {
			return true
		}
	}
	return false
}

// Len returns the number of active patterns.
func (m Matcher) Len() int {
	return len(m.patterns)
}

// Patterns returns the active patterns in order.
func (m Matcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		out[i] = p.raw
	}
	return out
}
