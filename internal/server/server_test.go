package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/craftfolio/internal/contact"
)

func newSiteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":               "<h1>craftfolio</h1>",
		"js/script.js":             "console.log('hi')",
		"contact/contact-info.json": "[]",
		".craftfolio.yml":          "port: 3000",
		"server/main.go":           "package main",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		os.MkdirAll(filepath.Dir(path), 0o755)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestStaticServesSite(t *testing.T) {
	dir := newSiteDir(t)
	srv := New(Config{SiteDir: dir, StaticDeny: []string{"contact/**", "**/.*", "**/*.go", "*.yml"}})
	srv.MountStatic()

	tests := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/js/script.js", http.StatusOK},
		{"/contact/contact-info.json", http.StatusNotFound},
		{"/contact/", http.StatusNotFound},
		{"/.craftfolio.yml", http.StatusNotFound},
		{"/server/main.go", http.StatusNotFound},
		{"/js/../contact/contact-info.json", http.StatusNotFound},
		{"/Contact/contact-info.json", http.StatusNotFound},
		{"/missing.html", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.path, nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}

func TestAPIRoutesTakePrecedenceOverStatic(t *testing.T) {
	dir := newSiteDir(t)
	store, err := contact.NewFileStore(filepath.Join(dir, "contact"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	srv := New(Config{SiteDir: dir, StaticDeny: []string{"contact/**"}})
	contact.RegisterRoutes(srv.API(), store)
	srv.MountStatic()

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":"a","email":"b","company":"c","message":"d"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if n, _ := store.Count(); n != 1 {
		t.Errorf("stored %d submissions, want 1", n)
	}
}

func TestDenied(t *testing.T) {
	h := NewStaticHandler(t.TempDir(), []string{"contact/**", "**/.*"})
	tests := []struct {
		path string
		want bool
	}{
		{"/", false},
		{"/index.html", false},
		{"/contact", true},
		{"/contact/contact-info.json", true},
		{"/.git/config", true},
		{"/assets/.env", true},
		{"/assets/logo.svg", false},
		{"/Contact/contact-info.json", true},
		{"/CONTACT/Contact-Info.JSON", true},
		{"/Assets/Logo.svg", false},
	}
	for _, tt := range tests {
		if got := h.Denied(tt.path); got != tt.want {
			t.Errorf("Denied(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
