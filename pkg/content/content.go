// Package content matches files against the style content globs: the list
// of source files scanned for class names, also used by development mode to
// decide which file changes trigger a template reload.
package content

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher holds a validated set of slash-separated glob patterns.
// Patterns support ** and {a,b} alternation.
type Matcher struct {
	patterns []string
}

// NewMatcher validates and normalizes patterns. A leading "./" is dropped so
// patterns are relative to the scanned root.
func NewMatcher(patterns []string) (*Matcher, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("at least one content pattern required")
	}

	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		n := normalize(p)
		if n == "" {
			return nil, fmt.Errorf("empty content pattern")
		}
		if !doublestar.ValidatePattern(n) {
			return nil, fmt.Errorf("invalid content pattern: %q", p)
		}
		normalized = append(normalized, n)
	}

	return &Matcher{patterns: normalized}, nil
}

// Patterns returns the normalized patterns.
func (m *Matcher) Patterns() []string {
	return slices.Clone(m.patterns)
}

// Match reports whether name, relative to the scanned root, is covered by
// any pattern.
func (m *Matcher) Match(name string) bool {
	name = normalize(name)
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Dirs returns the sorted, unique static directory prefixes of the
// patterns: the directories that must be watched to observe every match.
func (m *Matcher) Dirs() []string {
	var dirs []string
	for _, p := range m.patterns {
		base, _ := doublestar.SplitPattern(p)
		if !slices.Contains(dirs, base) {
			dirs = append(dirs, base)
		}
	}
	slices.Sort(dirs)
	return dirs
}

// Scan returns the sorted, unique files in fsys matched by m.
func Scan(fsys fs.FS, m *Matcher) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, p := range m.patterns {
		matches, err := doublestar.Glob(fsys, p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", p, err)
		}
		for _, f := range matches {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	slices.Sort(files)
	return files, nil
}

func normalize(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}
