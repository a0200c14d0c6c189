package main

import (
	"log/slog"
	"net"

	"github.com/pkg/browser"

	"github.com/JaimeStill/phpstan-ui/pkg/watch"
)

// startDev watches the build content globs and reparses the app templates
// whenever a matched file changes.
func (s *Server) startDev() error {
	matcher := s.cfg.Build.Matcher()
	logger := s.infra.Logger.With("module", "dev")

	w, err := watch.New(watch.Config{
		Root:     sourceRoot(),
		Dirs:     matcher.Dirs(),
		Match:    matcher.Match,
		Debounce: s.cfg.Dev.DebounceDuration(),
		OnChange: func(changed []string) {
			if err := s.modules.App.Reload(); err != nil {
				logger.Error("template reload failed", "error", err, "changed", changed)
				return
			}
			logger.Info("templates reloaded", "changed", changed)
		},
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("watching content", "patterns", matcher.Patterns())
	return w.Start(s.infra.Lifecycle)
}

func openBrowser(logger *slog.Logger, addr string) {
	url := "http://" + browserHost(addr)
	if err := browser.OpenURL(url); err != nil {
		logger.Warn("open browser failed", "url", url, "error", err)
	}
}

// browserHost rewrites unspecified listen hosts to localhost.
func browserHost(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
