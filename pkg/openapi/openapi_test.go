package openapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/phpstan-ui/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	if spec.OpenAPI != openapi.Version {
		t.Errorf("OpenAPI = %q, want %q", spec.OpenAPI, openapi.Version)
	}
	if spec.Info.Title != "Test API" || spec.Info.Version != "1.0.0" {
		t.Errorf("Info = %+v", spec.Info)
	}
	if spec.Paths == nil {
		t.Error("Paths map is nil")
	}
	for _, name := range []string{"BadRequest", "NotFound"} {
		if _, ok := spec.Components.Responses[name]; !ok {
			t.Errorf("missing default response: %s", name)
		}
	}
}

func TestSpecSetters(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	spec.SetDescription("desc")
	spec.AddServer("")
	spec.AddServer("http://localhost:8080")

	if spec.Info.Description != "desc" {
		t.Errorf("Description = %q, want desc", spec.Info.Description)
	}
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "http://localhost:8080" {
		t.Errorf("Servers = %+v, want one localhost server", spec.Servers)
	}
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	get := &openapi.Operation{Summary: "get"}
	del := &openapi.Operation{Summary: "delete"}

	spec.AddOperation("/items", http.MethodGet, get)
	spec.AddOperation("/items", http.MethodDelete, del)
	spec.AddOperation("/items", "PATCH", &openapi.Operation{Summary: "ignored"})

	item := spec.Paths["/items"]
	if item == nil {
		t.Fatal("path /items not added")
	}
	if item.Get != get || item.Delete != del {
		t.Errorf("PathItem = %+v", item)
	}
	if item.Post != nil || item.Put != nil {
		t.Error("unexpected operations on path")
	}
}

func TestComponentsAddSchemas(t *testing.T) {
	c := openapi.NewComponents()
	c.AddSchemas(map[string]*openapi.Schema{"Route": {Type: "object"}})

	if c.Schemas["Route"] == nil {
		t.Error("schema not added")
	}
	if c.Schemas["Error"] == nil {
		t.Error("default Error schema was lost")
	}
}

func TestRefs(t *testing.T) {
	if got := openapi.SchemaRef("Route").Ref; got != "#/components/schemas/Route" {
		t.Errorf("SchemaRef = %q", got)
	}
	if got := openapi.ResponseRef("NotFound").Ref; got != "#/components/responses/NotFound" {
		t.Errorf("ResponseRef = %q", got)
	}

	arr := openapi.ResponseJSONArray("list", "Route").Content["application/json"].Schema
	if arr.Type != "array" || arr.Items.Ref != "#/components/schemas/Route" {
		t.Errorf("ResponseJSONArray schema = %+v", arr)
	}
}

func TestQueryParam(t *testing.T) {
	p := openapi.QueryParam("path", "string", "Path to resolve", true)
	if p.In != "query" || !p.Required || p.Schema.Type != "string" {
		t.Errorf("QueryParam = %+v", p)
	}
}

func TestMarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	spec.AddOperation("/routes", http.MethodGet, &openapi.Operation{
		Summary:   "List routes",
		Responses: map[int]*openapi.Response{200: {Description: "ok"}},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", result["openapi"])
	}
	paths := result["paths"].(map[string]any)
	if _, ok := paths["/routes"]; !ok {
		t.Error("paths missing /routes")
	}
}

func TestWriteJSON(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	path := filepath.Join(t.TempDir(), "openapi.json")

	if err := openapi.WriteJSON(spec, path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if !json.Valid(data) {
		t.Error("written file is not valid JSON")
	}
}

func TestWriteJSON_InvalidPath(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	if err := openapi.WriteJSON(spec, "/nonexistent/directory/openapi.json"); err == nil {
		t.Error("WriteJSON() expected error for invalid path")
	}
}

func TestServeSpec(t *testing.T) {
	h := openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(w.Result().Body)
	if string(body) != `{"openapi":"3.1.0"}` {
		t.Errorf("body = %q", body)
	}
}

func TestPathParam(t *testing.T) {
	p := openapi.PathParam("name", "Route name")
	if p.In != "path" || !p.Required || p.Schema.Type != "string" {
		t.Errorf("PathParam = %+v", p)
	}
}
