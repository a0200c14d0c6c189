// Package api assembles the JSON API module: route table inspection, path
// resolution, and the style content manifest, documented with OpenAPI.
package api

import (
	"io/fs"
	"net/http"

	"github.com/JaimeStill/phpstan-ui/internal/config"
	"github.com/JaimeStill/phpstan-ui/internal/infrastructure"
	"github.com/JaimeStill/phpstan-ui/pkg/middleware"
	"github.com/JaimeStill/phpstan-ui/pkg/module"
	"github.com/JaimeStill/phpstan-ui/pkg/openapi"
)

const (
	// BasePath is the mount prefix of the API module.
	BasePath = "/api"

	title       = "PHPStan UI API"
	description = "Route table inspection and style build content for the PHPStan UI."
)

// NewModule creates the API module. source is the tree the style content
// globs are scanned against.
func NewModule(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	source fs.FS,
	version string,
) (*module.Module, error) {
	mux, spec := build(cfg, infra, source, version)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(BasePath, mux)
	m.Use(middleware.CORS(&cfg.CORS))

	return m, nil
}

// NewSpec builds the OpenAPI document of the API module without serving it.
func NewSpec(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	source fs.FS,
	version string,
) *openapi.Spec {
	_, spec := build(cfg, infra, source, version)
	return spec
}

func build(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	source fs.FS,
	version string,
) (*http.ServeMux, *openapi.Spec) {
	runtime := NewRuntime(cfg, infra, source)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(title, version)
	spec.SetDescription(description)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, domain)

	return mux, spec
}
