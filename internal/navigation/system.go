// Package navigation exposes the application route table: listing routes,
// resolving request paths, and building URLs from route names.
package navigation

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/phpstan-ui/pkg/web"
)

// System defines read access to the route table.
type System interface {
	Handler() *Handler

	// Routes returns all routes in resolution order.
	Routes() []Route

	// Find returns the route with the given name.
	// Returns ErrNotFound if no route has that name.
	Find(name string) (*Route, error)

	// Resolve returns the route a request path renders.
	// Returns ErrInvalidPath if path is not absolute.
	Resolve(path string) (*Resolution, error)

	// Path builds the URL path of a named route.
	// Returns ErrNotFound for an unknown name and ErrInvalidParams when a
	// required parameter is missing or would resolve to another route.
	Path(name string, params map[string]string) (*Link, error)
}

type system struct {
	table  *web.Table
	logger *slog.Logger
}

// New creates a navigation system over table.
func New(table *web.Table, logger *slog.Logger) System {
	return &system{
		table:  table,
		logger: logger.With("system", "navigation"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Routes() []Route {
	all := s.table.Routes()
	routes := make([]Route, len(all))
	for i, r := range all {
		routes[i] = routeFrom(r, i == len(all)-1)
	}
	return routes
}

func (s *system) Find(name string) (*Route, error) {
	r, ok := s.table.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	route := routeFrom(r, r.Name == s.table.CatchAll().Name)
	return &route, nil
}

func (s *system) Resolve(path string) (*Resolution, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q must start with /", ErrInvalidPath, path)
	}

	m := s.table.Resolve(path)
	s.logger.Debug("path resolved", "path", path, "route", m.Route.Name, "fallback", m.Fallback)

	return &Resolution{
		Path:     path,
		Name:     m.Route.Name,
		View:     m.Route.View.Template,
		Params:   m.Params,
		Fallback: m.Fallback,
	}, nil
}

func (s *system) Path(name string, params map[string]string) (*Link, error) {
	p, err := s.table.Path(name, params)
	if err != nil {
		switch {
		case errors.Is(err, web.ErrUnknownRoute):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		case errors.Is(err, web.ErrMissingParam), errors.Is(err, web.ErrInvalidParam):
			return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		return nil, err
	}
	return &Link{Name: name, Path: p}, nil
}
