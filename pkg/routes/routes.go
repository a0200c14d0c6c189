// Package routes groups HTTP handlers under shared prefixes and registers them
// on a ServeMux while recording their OpenAPI operations.
package routes

import (
	"net/http"

	"github.com/JaimeStill/phpstan-ui/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, handler, and optional
// OpenAPI operation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec records the group's operations and schemas in spec under parent,
// the mount prefix of the module serving the group. Operations without tags
// inherit the group's tags.
func (g *Group) AddToSpec(parent string, spec *openapi.Spec) {
	prefix := parent + g.Prefix

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	for i := range g.Children {
		g.Children[i].AddToSpec(prefix, spec)
	}
}

// Register mounts every group's routes on mux relative to the module root and
// adds their operations to spec under basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
		group.AddToSpec(basePath, spec)
	}
}

func registerGroup(mux *http.ServeMux, parent string, group Group) {
	prefix := parent + group.Prefix

	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}

	for _, child := range group.Children {
		registerGroup(mux, prefix, child)
	}
}
