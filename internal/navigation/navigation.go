package navigation

import "github.com/JaimeStill/phpstan-ui/pkg/web"

// Route describes one entry of the route table.
type Route struct {
	Name     string `json:"name"`
	Pattern  string `json:"pattern"`
	View     string `json:"view"`
	Title    string `json:"title"`
	CatchAll bool   `json:"catch_all"`
}

// Resolution is the route table's answer for a request path.
type Resolution struct {
	Path     string            `json:"path"`
	Name     string            `json:"name"`
	View     string            `json:"view"`
	Params   map[string]string `json:"params,omitempty"`
	Fallback bool              `json:"fallback"`
}

// Link is a URL built from a named route.
type Link struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func routeFrom(r web.Route, catchAll bool) Route {
	return Route{
		Name:     r.Name,
		Pattern:  r.Pattern,
		View:     r.View.Template,
		Title:    r.View.Title,
		CatchAll: catchAll,
	}
}
