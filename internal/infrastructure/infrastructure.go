// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every module requires: lifecycle coordination,
// logging, and the application route table.
package infrastructure

import (
	"log/slog"

	"github.com/JaimeStill/phpstan-ui/internal/config"
	"github.com/JaimeStill/phpstan-ui/pkg/lifecycle"
	"github.com/JaimeStill/phpstan-ui/pkg/logging"
	"github.com/JaimeStill/phpstan-ui/pkg/web"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Table     *web.Table
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config, table *web.Table) *Infrastructure {
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
		Table:     table,
	}
}

// With returns a copy whose logger carries the given module name.
func (i *Infrastructure) With(module string) *Infrastructure {
	return &Infrastructure{
		Lifecycle: i.Lifecycle,
		Logger:    i.Logger.With("module", module),
		Table:     i.Table,
	}
}
