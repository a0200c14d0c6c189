package navigation

import (
	"errors"
	"net/http"
)

// Domain errors for the navigation system.
var (
	// ErrNotFound indicates no route has the requested name.
	ErrNotFound = errors.New("route not found")

	// ErrInvalidPath indicates a path that cannot be resolved.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidParams indicates route parameters missing for URL building.
	ErrInvalidParams = errors.New("invalid route params")
)

// MapHTTPStatus maps navigation domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidPath), errors.Is(err, ErrInvalidParams):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
