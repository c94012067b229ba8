package server

import (
	"net/http"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// StaticHandler serves files from a directory, answering 404 for any path
// matching a deny pattern.
type StaticHandler struct {
	deny  []string
	files http.Handler
}

// NewStaticHandler returns a handler serving dir.
func NewStaticHandler(dir string, deny []string) *StaticHandler {
	return &StaticHandler{deny: deny, files: http.FileServer(http.Dir(dir))}
}

// Denied reports whether the URL path, or any directory above it, matches
// a deny pattern. Matching ignores case since the site may live on a
// case-insensitive filesystem.
func (h *StaticHandler) Denied(urlPath string) bool {
	rel := strings.ToLower(strings.TrimPrefix(path.Clean("/"+urlPath), "/"))
	if rel == "" {
		return false
	}
	segments := strings.Split(rel, "/")
	for i := range segments {
		if h.matches(strings.Join(segments[:i+1], "/")) {
			return true
		}
	}
	return false
}

func (h *StaticHandler) matches(rel string) bool {
	for _, pattern := range h.deny {
		pattern = strings.ToLower(pattern)
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
		// A pattern covering a directory's contents also covers its listing.
		if matched, err := doublestar.Match(pattern, rel+"/index.html"); err == nil && matched {
			return true
		}
	}
	return false
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Denied(r.URL.Path) {
		http.NotFound(w, r)
		return
	}
	h.files.ServeHTTP(w, r)
}
