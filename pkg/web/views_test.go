package web_test

import (
	"bytes"
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/phpstan-ui/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var (
	reportView = web.ViewDef{Template: "report.html", Title: "Report", Bundle: "app"}
	brokenView = web.ViewDef{Template: "broken.html", Title: "Broken", Bundle: "app"}
)

func testTable() *web.Table {
	return web.MustTable(
		web.Route{Pattern: "/", Name: "Home", View: homeView},
		web.Route{Pattern: "/reports/{level}", Name: "Report", View: reportView},
		web.Route{Pattern: "/broken", Name: "Broken", View: brokenView},
		web.Route{Pattern: "/{path...}", Name: "NotFound", View: notFoundView},
	)
}

func testOptions(table *web.Table) web.TemplateOptions {
	return web.TemplateOptions{
		LayoutGlob: "testdata/layouts/*.html",
		ViewSubdir: "testdata/views",
		BasePath:   "/app",
		Theme:      "class",
		Funcs:      table.Funcs("/app"),
	}
}

func viewsOf(table *web.Table) []web.ViewDef {
	var views []web.ViewDef
	for _, r := range table.Routes() {
		views = append(views, r.View)
	}
	return views
}

func newTestTemplateSet(t *testing.T) (*web.TemplateSet, *web.Table) {
	t.Helper()
	table := testTable()
	ts, err := web.NewTemplateSet(layoutFS, viewFS, testOptions(table), viewsOf(table))
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts, table
}

func TestNewTemplateSet(t *testing.T) {
	ts, _ := newTestTemplateSet(t)
	if ts == nil {
		t.Fatal("NewTemplateSet() returned nil")
	}
}

func TestNewTemplateSetInvalidLayoutGlob(t *testing.T) {
	table := testTable()
	opts := testOptions(table)
	opts.LayoutGlob = "nonexistent/*.html"

	if _, err := web.NewTemplateSet(layoutFS, viewFS, opts, viewsOf(table)); err == nil {
		t.Error("NewTemplateSet() with invalid layout glob should return error")
	}
}

func TestNewTemplateSetInvalidTemplate(t *testing.T) {
	table := testTable()
	views := []web.ViewDef{{Template: "nonexistent.html", Title: "Missing"}}

	if _, err := web.NewTemplateSet(layoutFS, viewFS, testOptions(table), views); err == nil {
		t.Error("NewTemplateSet() with invalid template should return error")
	}
}

func TestNewTemplateSetUnknownFunc(t *testing.T) {
	table := testTable()
	opts := testOptions(table)
	opts.Funcs = nil

	if _, err := web.NewTemplateSet(layoutFS, viewFS, opts, viewsOf(table)); err == nil {
		t.Error("NewTemplateSet() without the path func should fail to parse layouts")
	}
}

func TestExecute(t *testing.T) {
	ts, _ := newTestTemplateSet(t)

	var buf bytes.Buffer
	data := web.ViewData{Title: "Test", Bundle: "test-bundle", BasePath: "/app", Theme: "class"}

	if err := ts.Execute(&buf, "test.html", "home.html", data); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	body := buf.String()
	for _, want := range []string{"<!DOCTYPE html>", "<title>Test</title>", "Home Page", "test-bundle", `href="/app/"`, `data-theme="class"`} {
		if !strings.Contains(body, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestExecuteUnknownTemplate(t *testing.T) {
	ts, _ := newTestTemplateSet(t)

	var buf bytes.Buffer
	if err := ts.Execute(&buf, "test.html", "missing.html", web.ViewData{}); err == nil {
		t.Error("Execute() with unknown template should return error")
	}
}

func TestViewHandler(t *testing.T) {
	ts, table := newTestTemplateSet(t)
	handler := ts.ViewHandler("test.html")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"home", "/", http.StatusOK, "Home Page"},
		{"params", "/reports/5", http.StatusOK, "Report level 5"},
		{"fallback", "/nope", http.StatusNotFound, "<p>nope</p>"},
		{"render error", "/broken", http.StatusInternalServerError, "can't evaluate field Missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler(w, req, table.Resolve(tt.path))

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("body does not contain %q:\n%s", tt.wantBody, body)
			}
		})
	}
}

func TestTableFuncsPath(t *testing.T) {
	table := testTable()
	path := table.Funcs("/app")["path"].(func(string, ...string) (string, error))

	got, err := path("Report", "level", "9")
	if err != nil {
		t.Fatalf("path() error = %v", err)
	}
	if got != "/app/reports/9" {
		t.Errorf("path() = %q, want %q", got, "/app/reports/9")
	}

	if _, err := path("Report", "level"); err == nil {
		t.Error("path() with odd parameter count should return error")
	}
}

func TestJoinBase(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"", "/", "/"},
		{"", "/phpstan", "/phpstan"},
		{"/app", "/", "/app/"},
		{"/app/", "/phpstan", "/app/phpstan"},
	}

	for _, tt := range tests {
		if got := web.JoinBase(tt.base, tt.path); got != tt.want {
			t.Errorf("JoinBase(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}
