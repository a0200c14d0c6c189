package web

import "errors"

var (
	// ErrNoRoutes is returned when a table is built from an empty route list.
	ErrNoRoutes = errors.New("route table requires at least one route")

	// ErrCatchAll is returned when the table does not end with exactly one catch-all route.
	ErrCatchAll = errors.New("route table requires exactly one catch-all route, declared last")

	// ErrMissingName is returned when a route has no name.
	ErrMissingName = errors.New("route name required")

	// ErrDuplicateName is returned when two routes share a name.
	ErrDuplicateName = errors.New("duplicate route name")

	// ErrInvalidPattern is returned for malformed route patterns.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrUnknownRoute is returned when building a path for a name not in the table.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrMissingParam is returned when a path parameter has no value.
	ErrMissingParam = errors.New("missing route parameter")

	// ErrInvalidParam is returned when a parameter value would not round-trip
	// through Resolve, such as a "/" inside a single-segment parameter.
	ErrInvalidParam = errors.New("invalid route parameter")
)
