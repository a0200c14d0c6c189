package web

import "net/http"

// ViewHandler renders the view selected by a route table match.
type ViewHandler func(w http.ResponseWriter, r *http.Request, m Match)

// Router serves registered handlers first and resolves every other request
// through a route Table. Without a table, unmatched requests receive 404.
type Router struct {
	mux   *http.ServeMux
	table *Table
	views ViewHandler
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers a handler for a ServeMux pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function for a ServeMux pattern.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// SetViews binds a route table and the handler that renders its matches.
// Only GET and HEAD requests are resolved against the table.
func (r *Router) SetViews(table *Table, views ViewHandler) {
	r.table = table
	r.views = views
}

// ServeHTTP dispatches the request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if _, pattern := r.mux.Handler(req); pattern != "" {
		r.mux.ServeHTTP(w, req)
		return
	}

	if r.table != nil {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		r.views(w, req, r.table.Resolve(req.URL.Path))
		return
	}

	http.NotFound(w, req)
}
