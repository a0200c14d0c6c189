package styles_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/phpstan-ui/internal/styles"
	"github.com/JaimeStill/phpstan-ui/pkg/content"
)

func newSystem(t *testing.T, patterns ...string) styles.System {
	t.Helper()
	m, err := content.NewMatcher(patterns)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}

	fsys := fstest.MapFS{
		"web/app/server/layouts/app.html":           {Data: []byte("layout")},
		"web/app/server/views/home.html":            {Data: []byte("home")},
		"web/app/server/views/phpstan/phpstan.html": {Data: []byte("phpstan")},
		"web/app/dist/app.js":                       {Data: []byte("js")},
		"web/app/dist/app.css":                      {Data: []byte("css")},
		"web/app/public/robots.txt":                 {Data: []byte("robots")},
	}

	return styles.New(fsys, m, "class", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestManifest(t *testing.T) {
	sys := newSystem(t,
		"./web/app/server/views/**/*.html",
		"./web/app/dist/*.{js,css}",
	)

	got, err := sys.Manifest()
	if err != nil {
		t.Fatalf("Manifest() error = %v", err)
	}

	want := &styles.Manifest{
		DarkMode: "class",
		Patterns: []string{"web/app/server/views/**/*.html", "web/app/dist/*.{js,css}"},
		Dirs:     []string{"web/app/dist", "web/app/server/views"},
		Files: []string{
			"web/app/dist/app.css",
			"web/app/dist/app.js",
			"web/app/server/views/home.html",
			"web/app/server/views/phpstan/phpstan.html",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Manifest() mismatch (-want +got):\n%s", diff)
	}
}

func TestManifestNoMatches(t *testing.T) {
	sys := newSystem(t, "src/**/*.vue")

	got, err := sys.Manifest()
	if err != nil {
		t.Fatalf("Manifest() error = %v", err)
	}
	if got.Files == nil || len(got.Files) != 0 {
		t.Errorf("Files = %#v, want empty non-nil slice", got.Files)
	}
}

func TestHandlerManifest(t *testing.T) {
	sys := newSystem(t, "web/app/public/*")
	h := sys.Handler()

	w := httptest.NewRecorder()
	h.Manifest(w, httptest.NewRequest(http.MethodGet, "/content", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var got styles.Manifest
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{"web/app/public/robots.txt"}, got.Files); diff != "" {
		t.Errorf("Files mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerRoutes(t *testing.T) {
	group := newSystem(t, "web/app/public/*").Handler().Routes()

	if group.Prefix != "/content" {
		t.Errorf("Prefix = %q, want /content", group.Prefix)
	}
	if len(group.Routes) != 1 || group.Routes[0].OpenAPI == nil {
		t.Error("expected one documented route")
	}
}
