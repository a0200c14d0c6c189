package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/phpstan-ui/pkg/module"
)

func TestRouter_Dispatch(t *testing.T) {
	r := module.NewRouter()

	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("healthy"))
	})
	r.HandleNative("/", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("app:" + req.URL.Path))
	})
	r.Mount(module.New("/api", echoPath()))

	tests := []struct {
		path string
		want string
	}{
		{"/api/routes", "/routes"},
		{"/api", "/"},
		{"/api/", "/"},
		{"/healthz", "healthy"},
		{"/", "app:/"},
		{"/phpstan", "app:/phpstan"},
		{"/apiary", "app:/apiary"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", string(body), tt.want)
			}
		})
	}
}

func TestRouter_UnmatchedPath(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", echoPath()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
