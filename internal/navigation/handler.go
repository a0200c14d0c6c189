package navigation

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/phpstan-ui/pkg/handlers"
	"github.com/JaimeStill/phpstan-ui/pkg/routes"
)

// Handler serves the navigation endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a navigation handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route groups served by the handler.
func (h *Handler) Routes() []routes.Group {
	return []routes.Group{
		{
			Prefix:      "/routes",
			Tags:        []string{"Routes"},
			Description: "Application route table",
			Schemas:     Spec.Schemas(),
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
				{Method: "GET", Pattern: "/{name}", Handler: h.Find, OpenAPI: Spec.Find},
				{Method: "GET", Pattern: "/{name}/path", Handler: h.Path, OpenAPI: Spec.Path},
			},
		},
		{
			Prefix:      "/resolve",
			Tags:        []string{"Routes"},
			Description: "Path resolution",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.Resolve, OpenAPI: Spec.Resolve},
			},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Routes())
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Find(r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("path") {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: path query parameter is required", ErrInvalidPath))
		return
	}

	result, err := h.sys.Resolve(q.Get("path"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Path builds a URL for the named route. Query parameters supply the route
// parameters.
func (h *Handler) Path(w http.ResponseWriter, r *http.Request) {
	params := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	result, err := h.sys.Path(r.PathValue("name"), params)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
