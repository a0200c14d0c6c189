package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/phpstan-ui/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"name": "Home"})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"name":"Home"}` {
		t.Errorf("body = %s", body)
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
	}{
		{"client error", http.StatusBadRequest, "level=WARN"},
		{"server error", http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			w := httptest.NewRecorder()
			handlers.RespondError(w, logger, tt.status, errors.New("invalid path"))

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			var body handlers.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != "invalid path" {
				t.Errorf("error = %q, want invalid path", body.Error)
			}
			if !strings.Contains(logs.String(), tt.level) {
				t.Errorf("log %q missing %s", logs.String(), tt.level)
			}
		})
	}
}
