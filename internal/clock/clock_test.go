package clock

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func TestNewTick(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 5, 9, 0, time.UTC)
	tick := NewTick(at)
	if tick.Time != "14:05:09" || tick.Zone != "UTC" || tick.Seconds != at.Unix() {
		t.Errorf("tick = %+v", tick)
	}
}

func TestFeedStreamsTicks(t *testing.T) {
	f := NewFeed(10 * time.Millisecond)
	f.now = func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	RegisterRoutes(r, f)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/clock"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 3; i++ {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var tick Tick
		if err := conn.ReadJSON(&tick); err != nil {
			t.Fatalf("read tick %d: %v", i, err)
		}
		if tick.Time != "08:00:00" {
			t.Errorf("tick %d time = %q", i, tick.Time)
		}
	}
}
