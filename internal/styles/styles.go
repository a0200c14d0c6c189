// Package styles reports the style build inputs: the dark mode strategy and
// the source files covered by the content globs.
package styles

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/JaimeStill/phpstan-ui/pkg/content"
)

// Manifest describes the current style build inputs.
type Manifest struct {
	DarkMode string   `json:"dark_mode"`
	Patterns []string `json:"patterns"`
	Dirs     []string `json:"dirs"`
	Files    []string `json:"files"`
}

// System defines access to the style build inputs.
type System interface {
	Handler() *Handler

	// Manifest scans the source tree and returns the matched files.
	Manifest() (*Manifest, error)
}

type system struct {
	root     fs.FS
	matcher  *content.Matcher
	darkMode string
	logger   *slog.Logger
}

// New creates a styles system that scans root with matcher.
func New(root fs.FS, matcher *content.Matcher, darkMode string, logger *slog.Logger) System {
	return &system{
		root:     root,
		matcher:  matcher,
		darkMode: darkMode,
		logger:   logger.With("system", "styles"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Manifest() (*Manifest, error) {
	files, err := content.Scan(s.root, s.matcher)
	if err != nil {
		return nil, fmt.Errorf("scan content: %w", err)
	}
	if files == nil {
		files = []string{}
	}

	return &Manifest{
		DarkMode: s.darkMode,
		Patterns: s.matcher.Patterns(),
		Dirs:     s.matcher.Dirs(),
		Files:    files,
	}, nil
}
