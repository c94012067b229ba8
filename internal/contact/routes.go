package contact

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes limits the size of a contact submission body.
const maxBodyBytes = 1 << 20

// RegisterRoutes mounts the contact endpoints under /api/contact on the given router.
func RegisterRoutes(r chi.Router, store *FileStore) {
	r.Route("/api/contact", func(r chi.Router) {
		r.Post("/", handleSubmit(store))
		r.Get("/count", handleCount(store))
	})
}

func handleSubmit(store *FileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{"ok": false, "error": "request body too large"})
			return
		}
		payload, err := DecodePayload(body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "invalid request body"})
			return
		}

		count, err := store.Append(payload)
		if err != nil {
			log.Printf("[api/contact] failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "Internal Server Error"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "count": count})
	}
}

func handleCount(store *FileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := store.Count()
		if err != nil {
			log.Printf("[api/contact] count failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "Internal Server Error"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "count": count})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
