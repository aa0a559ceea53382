package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-console/internal/console"
	"admin-console/internal/httpserver"
	"admin-console/pkg/log"
)

func newServer(t *testing.T, entities ...string) *httpserver.HTTPServer {
	t.Helper()
	reg := console.NewRegistry()
	for _, name := range entities {
		reg.Register(console.EntityInfo{Name: name}, nil)
	}
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:     8080,
		Mode:     "test",
		Registry: reg,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, "category")
	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
			continue
		}
		var body struct {
			Data map[string]any `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Data["status"] != status || body.Data["service"] != httpserver.ServiceName {
			t.Errorf("%s: unexpected body %s", path, w.Body.String())
		}
	}
}

func TestReadyNeedsEntities(t *testing.T) {
	w := httptest.NewRecorder()
	newServer(t).Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	newServer(t, "return_reason", "category").Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	var body struct {
		Data struct {
			Entities []string `json:"entities"`
		} `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if got := body.Data.Entities; len(got) != 2 || got[0] != "category" {
		t.Errorf("expected sorted entity names, got %v", got)
	}
}

func TestConsoleRoutesMounted(t *testing.T) {
	srv := newServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/console/sessions", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected request id header")
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 8080, Mode: "test"}); err == nil {
		t.Errorf("expected error without registry")
	}
}
