package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects paths with a trailing slash to their canonical form
// without it. The root path "/" and paths listed in keep are left alone.
// GET and HEAD are redirected with 301; other methods with 308 so the
// body is replayed.
func TrimSlash(keep ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(keep))
	for _, p := range keep {
		skip[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if len(p) <= 1 || !strings.HasSuffix(p, "/") || skip[p] {
				next.ServeHTTP(w, r)
				return
			}

			target := strings.TrimRight(p, "/")
			if target == "" {
				target = "/"
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			status := http.StatusMovedPermanently
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				status = http.StatusPermanentRedirect
			}
			http.Redirect(w, r, target, status)
		})
	}
}
