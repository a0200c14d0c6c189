package api

import (
	"net/http"

	"github.com/JaimeStill/phpstan-ui/pkg/openapi"
	"github.com/JaimeStill/phpstan-ui/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, spec *openapi.Spec, domain *Domain) {
	groups := domain.Navigation.Handler().Routes()
	groups = append(groups, domain.Styles.Handler().Routes())

	routes.Register(mux, BasePath, spec, groups...)
}
