package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/JaimeStill/phpstan-ui/pkg/content"
)

const (
	EnvBuildContent  = "BUILD_CONTENT"
	EnvBuildDarkMode = "BUILD_DARK_MODE"
)

// Dark mode strategies understood by the layout.
const (
	DarkModeClass = "class"
	DarkModeMedia = "media"
)

// BuildConfig holds the style build settings: the content globs scanned for
// class names and the dark mode strategy.
type BuildConfig struct {
	Content  []string `toml:"content"`
	DarkMode string   `toml:"dark_mode"`

	matcher *content.Matcher
}

// Matcher returns the compiled content globs. It is nil before Finalize.
func (c *BuildConfig) Matcher() *content.Matcher {
	return c.matcher
}

// Finalize applies defaults, loads environment overrides, and validates the build configuration.
func (c *BuildConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge replaces content globs when the overlay declares any.
func (c *BuildConfig) Merge(overlay *BuildConfig) {
	if overlay.Content != nil {
		c.Content = overlay.Content
	}
	if overlay.DarkMode != "" {
		c.DarkMode = overlay.DarkMode
	}
}

// DefaultContent is the content glob list used when none is configured:
// public files, layouts, views and bundled scripts and styles.
var DefaultContent = []string{
	"./web/app/public/*",
	"./web/app/server/layouts/*.html",
	"./web/app/server/views/**/*.html",
	"./web/app/dist/*.{js,css}",
}

func (c *BuildConfig) loadDefaults() {
	if len(c.Content) == 0 {
		c.Content = slices.Clone(DefaultContent)
	}
	if c.DarkMode == "" {
		c.DarkMode = DarkModeClass
	}
}

func (c *BuildConfig) loadEnv() {
	if v := os.Getenv(EnvBuildContent); v != "" {
		var globs []string
		for _, g := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(g); trimmed != "" {
				globs = append(globs, trimmed)
			}
		}
		c.Content = globs
	}
	if v := os.Getenv(EnvBuildDarkMode); v != "" {
		c.DarkMode = v
	}
}

func (c *BuildConfig) validate() error {
	switch c.DarkMode {
	case DarkModeClass, DarkModeMedia:
	default:
		return fmt.Errorf("invalid dark_mode: %s (must be class or media)", c.DarkMode)
	}

	m, err := content.NewMatcher(c.Content)
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}
	c.matcher = m
	return nil
}
