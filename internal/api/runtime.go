package api

import (
	"io/fs"

	"github.com/JaimeStill/phpstan-ui/internal/config"
	"github.com/JaimeStill/phpstan-ui/internal/infrastructure"
	"github.com/JaimeStill/phpstan-ui/pkg/content"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Source   fs.FS
	Content  *content.Matcher
	DarkMode string
}

// NewRuntime creates an API runtime with a module-scoped logger. source is
// the tree the style content globs are scanned against.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure, source fs.FS) *Runtime {
	return &Runtime{
		Infrastructure: infra.With("api"),
		Source:         source,
		Content:        cfg.Build.Matcher(),
		DarkMode:       cfg.Build.DarkMode,
	}
}
