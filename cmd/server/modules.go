package main

import (
	"net/http"
	"os"

	"github.com/JaimeStill/phpstan-ui/internal/api"
	"github.com/JaimeStill/phpstan-ui/internal/config"
	"github.com/JaimeStill/phpstan-ui/internal/infrastructure"
	"github.com/JaimeStill/phpstan-ui/pkg/lifecycle"
	"github.com/JaimeStill/phpstan-ui/pkg/module"
	"github.com/JaimeStill/phpstan-ui/web/app"
)

// Modules holds the mounted API module and the root-level web app.
type Modules struct {
	API *module.Module
	App *app.App
}

// NewModules creates the API module and the web app. In dev mode the app
// reads its templates and assets from disk.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config, opts Options) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra, os.DirFS(sourceRoot()), version)
	if err != nil {
		return nil, err
	}

	appOpts := app.Options{Theme: cfg.Build.DarkMode}
	if opts.Dev {
		appOpts.SourceDir = cfg.Dev.SourceDir
		appOpts.PublicDir = cfg.Dev.PublicDir
	}

	webApp, err := app.New(appOpts)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
		App: webApp,
	}, nil
}

// Mount registers the modules on router. The app is served at the root so
// that every path not claimed by a module reaches the route table.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.HandleNative("/", m.App.Handler().ServeHTTP)
}

func buildRouter(infra *infrastructure.Infrastructure, modules *Modules) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", readyHandler(infra.Lifecycle))

	modules.Mount(router)

	return router
}

// readyHandler reports 503 until every startup hook, including the dev
// watcher's directory walk, has finished.
func readyHandler(rc lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
