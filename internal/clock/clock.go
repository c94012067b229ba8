// Package clock feeds the live clock on the page over a websocket.
package clock

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Tick is one clock message.
type Tick struct {
	Time    string `json:"time"` // HH:MM:SS in the server's zone
	Zone    string `json:"zone"`
	ISO     string `json:"iso"`
	Seconds int64  `json:"unix"`
}

// NewTick formats t as a clock message.
func NewTick(t time.Time) Tick {
	zone, _ := t.Zone()
	return Tick{
		Time:    t.Format("15:04:05"),
		Zone:    zone,
		ISO:     t.Format(time.RFC3339),
		Seconds: t.Unix(),
	}
}

// Feed streams ticks to websocket clients.
type Feed struct {
	interval time.Duration
	now      func() time.Time
}

// NewFeed returns a feed ticking every interval.
func NewFeed(interval time.Duration) *Feed {
	if interval <= 0 {
		interval = time.Second
	}
	return &Feed{interval: interval, now: time.Now}
}

// RegisterRoutes mounts the clock feed at /api/clock on the given router.
func RegisterRoutes(r chi.Router, f *Feed) {
	r.Get("/api/clock", f.handleWebSocket)
}

func (f *Feed) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("clock: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// Reads only detect the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("clock: websocket read: %v", err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	if err := conn.WriteJSON(NewTick(f.now())); err != nil {
		return
	}
	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := conn.WriteJSON(NewTick(f.now())); err != nil {
				log.Printf("clock: websocket write: %v", err)
				return
			}
		}
	}
}
