package navigation

import "github.com/JaimeStill/phpstan-ui/pkg/openapi"

type spec struct {
	List    *openapi.Operation
	Find    *openapi.Operation
	Path    *openapi.Operation
	Resolve *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the navigation endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List routes",
		Description: "Returns the route table in resolution order. The last route is the catch-all.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Routes in resolution order", "Route"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find route by name",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("name", "Route name"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Route", "Route"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Path: &openapi.Operation{
		Summary:     "Build route URL",
		Description: "Builds the URL path of a named route. Query parameters supply route parameters.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("name", "Route name"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Route URL", "Link"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Resolve: &openapi.Operation{
		Summary:     "Resolve path",
		Description: "Returns the route a request path renders. Every absolute path resolves; unmatched paths resolve to the catch-all.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("path", "string", "Absolute request path", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Resolution", "Resolution"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

// Schemas returns the navigation schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Route": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":      {Type: "string", Example: "PhpStan"},
				"pattern":   {Type: "string", Example: "/phpstan"},
				"view":      {Type: "string"},
				"title":     {Type: "string"},
				"catch_all": {Type: "boolean"},
			},
		},
		"Resolution": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path":     {Type: "string"},
				"name":     {Type: "string"},
				"view":     {Type: "string"},
				"params":   {Type: "object", Description: "Captured route parameters"},
				"fallback": {Type: "boolean", Description: "True when the catch-all route matched"},
			},
		},
		"Link": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string"},
				"path": {Type: "string"},
			},
		},
	}
}
