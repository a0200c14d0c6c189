// Package app provides the web application with embedded templates and assets.
// Navigation is resolved through a single ordered route table whose final
// catch-all route renders the NotFound view.
package app

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"go.uber.org/atomic"

	"github.com/JaimeStill/phpstan-ui/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views
var viewFS embed.FS

const (
	layoutName = "app.html"
	layoutGlob = "server/layouts/*.html"
	viewSubdir = "server/views"
	distSubdir = "dist"
)

var publicFiles = []string{
	"robots.txt",
	"site.webmanifest",
}

var (
	homeView     = web.ViewDef{Template: "home.html", Title: "Home", Bundle: "app"}
	phpstanView  = web.ViewDef{Template: "phpstan/phpstan.html", Title: "PHPStan", Bundle: "app"}
	notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}
)

// Routes returns the application route table in declaration order.
func Routes() []web.Route {
	return []web.Route{
		{Pattern: "/", Name: "Home", View: homeView},
		{Pattern: "/phpstan", Name: "PhpStan", View: phpstanView},
		{Pattern: "/{pathMatch...}", Name: "NotFound", View: notFoundView},
	}
}

// NewTable builds the application route table.
func NewTable() *web.Table {
	return web.MustTable(Routes()...)
}

// Options configures an App.
type Options struct {
	// BasePath prefixes generated URLs when the app is mounted below root.
	BasePath string
	// Theme is the dark mode strategy, "class" or "media".
	Theme string
	// SourceDir serves templates and assets from disk instead of the
	// embedded copies. Empty means embedded.
	SourceDir string
	// PublicDir is the public directory under SourceDir.
	PublicDir string
}

// App serves the application views and assets. Templates can be reparsed
// from their source with Reload while requests are in flight.
type App struct {
	opts      Options
	table     *web.Table
	templates *atomic.Pointer[web.TemplateSet]
	router    *web.Router

	dist   fs.FS
	public fs.FS
	layout fs.FS
	views  fs.FS
}

// New parses the application templates and builds its router.
func New(opts Options) (*App, error) {
	a := &App{
		opts:  opts,
		table: NewTable(),
	}

	publicSubdir := "public"
	if opts.SourceDir != "" {
		root := os.DirFS(opts.SourceDir)
		a.dist, a.public, a.layout, a.views = root, root, root, root
		if opts.PublicDir != "" {
			publicSubdir = opts.PublicDir
		}
	} else {
		a.dist, a.public, a.layout, a.views = distFS, publicFS, layoutFS, viewFS
	}

	ts, err := a.parse()
	if err != nil {
		return nil, err
	}
	a.templates = atomic.NewPointer(ts)
	a.router = a.buildRouter(publicSubdir)

	return a, nil
}

// Table returns the route table the app resolves against.
func (a *App) Table() *web.Table {
	return a.table
}

// Handler returns the app's HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Reload reparses all templates and swaps them in atomically. On error the
// previous templates stay active.
func (a *App) Reload() error {
	ts, err := a.parse()
	if err != nil {
		return err
	}
	a.templates.Store(ts)
	return nil
}

func (a *App) parse() (*web.TemplateSet, error) {
	views := make([]web.ViewDef, 0, len(a.table.Routes()))
	for _, r := range a.table.Routes() {
		views = append(views, r.View)
	}

	ts, err := web.NewTemplateSet(a.layout, a.views, web.TemplateOptions{
		LayoutGlob: layoutGlob,
		ViewSubdir: viewSubdir,
		BasePath:   a.opts.BasePath,
		Theme:      a.opts.Theme,
		Funcs:      a.table.Funcs(a.opts.BasePath),
	}, views)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return ts, nil
}

func (a *App) buildRouter(publicSubdir string) *web.Router {
	r := web.NewRouter()

	r.HandleFunc("GET /dist/{file}", web.DistServer(a.dist, distSubdir, "/dist/"))

	for _, route := range web.PublicFileRoutes(a.public, publicSubdir, publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	r.SetViews(a.table, func(w http.ResponseWriter, req *http.Request, m web.Match) {
		a.templates.Load().ViewHandler(layoutName)(w, req, m)
	})

	return r
}
