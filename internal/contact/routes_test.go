package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) (chi.Router, *FileStore) {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return r, store
}

func TestSubmitEndpoint(t *testing.T) {
	r, store := newTestRouter(t)

	for i := 1; i <= 2; i++ {
		req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":"Ada","email":"a@b.c","company":"X","message":"hi","userAgent":"ua"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			OK    bool `json:"ok"`
			Count int  `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !body.OK || body.Count != i {
			t.Errorf("response = %+v, want ok count %d", body, i)
		}
	}

	data, _ := os.ReadFile(store.Path())
	l, err := ParseLog(data)
	if err != nil || len(l) != 2 || l[0].Name != "Ada" || l[0].SubmittedAt.IsZero() {
		t.Errorf("stored = %+v (%v)", l, err)
	}
}

func TestSubmitEndpointBadBody(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSubmitEndpointCorruptStore(t *testing.T) {
	r, store := newTestRouter(t)
	os.WriteFile(store.Path(), []byte("{"), 0o644)

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":"a"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":false`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCountEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	store.Append(Payload{Name: "a"})

	req := httptest.NewRequest("GET", "/api/contact/count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"count":1`) {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}
