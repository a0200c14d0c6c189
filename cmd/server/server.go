package main

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/phpstan-ui/internal/config"
	"github.com/JaimeStill/phpstan-ui/internal/infrastructure"
	"github.com/JaimeStill/phpstan-ui/internal/server"
	"github.com/JaimeStill/phpstan-ui/web/app"
)

// Options selects how the server is assembled.
type Options struct {
	// Dev serves templates from disk on the dev port and reloads them on change.
	Dev bool
}

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	cfg     *config.Config
	opts    Options
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config, opts Options) (*Server, error) {
	infra := infrastructure.New(cfg, app.NewTable())

	modules, err := NewModules(infra, cfg, opts)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, modules)
	handler := buildMiddleware(infra).Apply(router)

	serverCfg := cfg.Server
	if opts.Dev {
		serverCfg.Port = cfg.Dev.Port
	}

	infra.Logger.Info(
		"server initialized",
		"addr", serverCfg.Addr(),
		"version", version,
		"dev", opts.Dev,
	)

	return &Server{
		cfg:     cfg,
		opts:    opts,
		infra:   infra,
		modules: modules,
		http:    server.New(&serverCfg, handler, infra.Logger, cfg.ShutdownTimeoutDuration()),
	}, nil
}

// Addr returns the address the HTTP server is bound to.
func (s *Server) Addr() string {
	return s.http.Addr()
}

// Start begins all subsystems and returns once the listener is bound.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if s.opts.Dev {
		if err := s.startDev(); err != nil {
			return fmt.Errorf("dev mode: %w", err)
		}
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	if s.opts.Dev && s.cfg.Dev.OpenBrowser() {
		openBrowser(s.infra.Logger, s.Addr())
	}

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}

func sourceRoot() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
