package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"time"
)

// StaticRoute describes a single static asset route.
type StaticRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer serves bundled assets from subdir of fsys under urlPrefix.
func DistServer(fsys fs.FS, subdir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile serves a single file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(subdir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes creates a root-level GET route for each named public file.
func PublicFileRoutes(fsys fs.FS, subdir string, names ...string) []StaticRoute {
	routes := make([]StaticRoute, 0, len(names))
	for _, name := range names {
		routes = append(routes, StaticRoute{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return routes
}
