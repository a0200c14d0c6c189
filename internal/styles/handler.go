package styles

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/phpstan-ui/pkg/handlers"
	"github.com/JaimeStill/phpstan-ui/pkg/openapi"
	"github.com/JaimeStill/phpstan-ui/pkg/routes"
)

// Handler serves the style content endpoint.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a styles handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group served by the handler.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/content",
		Tags:        []string{"Styles"},
		Description: "Style build content",
		Schemas: map[string]*openapi.Schema{
			"Manifest": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"dark_mode": {Type: "string", Example: "class"},
					"patterns":  {Type: "array", Items: &openapi.Schema{Type: "string"}},
					"dirs":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
					"files":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
				},
			},
		},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: h.Manifest,
				OpenAPI: &openapi.Operation{
					Summary:     "List content files",
					Description: "Returns the files currently matched by the style content globs",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Content manifest", "Manifest"),
					},
				},
			},
		},
	}
}

func (h *Handler) Manifest(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Manifest()
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
