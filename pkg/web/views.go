// Package web provides infrastructure for serving server-rendered views.
// Views are bound to paths through an ordered route Table, rendered from
// pre-parsed Go templates, and served alongside embedded static assets.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

// ViewDef identifies the template, title, and asset bundle of a view.
type ViewDef struct {
	Template string
	Title    string
	Bundle   string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Route    string
	Params   map[string]string
	Theme    string
	Data     any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
// Templates are parsed once at construction, avoiding per-request overhead.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
	theme    string
}

// TemplateOptions configures NewTemplateSet.
type TemplateOptions struct {
	LayoutGlob string
	ViewSubdir string
	BasePath   string
	Theme      string
	Funcs      template.FuncMap
}

// NewTemplateSet parses the layout templates once and clones them for each view.
// Parsing at construction gives fail-fast behavior for missing or broken templates.
func NewTemplateSet(layoutFS, viewFS fs.FS, opts TemplateOptions, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(opts.Funcs).ParseFS(layoutFS, opts.LayoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, opts.ViewSubdir)
	if err != nil {
		return nil, err
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, ok := viewTemplates[v.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
	}

	return &TemplateSet{
		views:    viewTemplates,
		basePath: opts.BasePath,
		theme:    opts.Theme,
	}, nil
}

// ViewHandler returns a handler that renders the view of a resolved match
// inside the named layout. Fallback matches are rendered with 404 Not Found.
func (ts *TemplateSet) ViewHandler(layout string) ViewHandler {
	return func(w http.ResponseWriter, r *http.Request, m Match) {
		status := http.StatusOK
		if m.Fallback {
			status = http.StatusNotFound
		}

		data := ViewData{
			Title:    m.Route.View.Title,
			Bundle:   m.Route.View.Bundle,
			BasePath: ts.basePath,
			Route:    m.Route.Name,
			Params:   m.Params,
			Theme:    ts.theme,
		}

		var buf bytes.Buffer
		if err := ts.Execute(&buf, layout, m.Route.View.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		buf.WriteTo(w)
	}
}

// Execute writes the named layout for a view to w without touching headers.
func (ts *TemplateSet) Execute(w io.Writer, layoutName, viewPath string, data ViewData) error {
	t, ok := ts.views[viewPath]
	if !ok {
		return fmt.Errorf("template not found: %s", viewPath)
	}
	return t.ExecuteTemplate(w, layoutName, data)
}

// Funcs returns template functions bound to the table. The path function
// builds a URL for a named route, taking parameters as key/value pairs:
//
//	{{ path "Home" }}
//	{{ path "Report" "level" "5" }}
func (t *Table) Funcs(basePath string) template.FuncMap {
	return template.FuncMap{
		"path": func(name string, pairs ...string) (string, error) {
			if len(pairs)%2 != 0 {
				return "", fmt.Errorf("path %s: parameters must be key/value pairs", name)
			}
			params := make(map[string]string, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				params[pairs[i]] = pairs[i+1]
			}
			p, err := t.Path(name, params)
			if err != nil {
				return "", err
			}
			return JoinBase(basePath, p), nil
		},
	}
}

// JoinBase prefixes a route path with a mount base path.
func JoinBase(basePath, path string) string {
	basePath = strings.TrimSuffix(basePath, "/")
	if basePath == "" {
		return path
	}
	return basePath + path
}
