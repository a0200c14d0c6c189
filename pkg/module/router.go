package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by first path segment and
// falls back to natively registered ServeMux patterns.
type Router struct {
	mux     *http.ServeMux
	modules map[string]*Module
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		mux:     http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a handler directly on the underlying ServeMux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.Prefix()] = m
}

// ServeHTTP routes by module prefix and otherwise defers to the native
// ServeMux. Paths are not rewritten; trailing-slash policy belongs to
// middleware.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if m, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		m.Serve(w, req)
		return
	}

	r.mux.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	if len(path) <= 1 {
		return ""
	}
	if i := strings.IndexByte(path[1:], '/'); i >= 0 {
		return path[:i+1]
	}
	return path
}
