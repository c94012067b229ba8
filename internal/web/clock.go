//go:build js && wasm

package web

import (
	"encoding/json"
	"syscall/js"
)

// ClockSelector locates the element showing the live clock.
const ClockSelector = "[data-clock]"

type tick struct {
	Time string `json:"time"`
	Zone string `json:"zone"`
}

// StartClock connects the clock element to the server's clock feed. It
// reports false when the page has no clock or the socket cannot be opened.
func StartClock() bool {
	el, ok := Query(ClockSelector)
	if !ok {
		return false
	}
	loc := global.Get("location")
	scheme := "ws:"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss:"
	}
	url := scheme + "//" + loc.Get("host").String() + "/api/clock"

	var ws js.Value
	var err error
	func() {
		defer catch(&err)
		ws = global.Get("WebSocket").New(url)
	}()
	if err != nil {
		return false
	}
	On(ws, "message", func(ev js.Value) {
		var t tick
		if json.Unmarshal([]byte(ev.Get("data").String()), &t) != nil {
			return
		}
		el.Set("textContent", t.Time+" "+t.Zone)
	}, false)
	return true
}
