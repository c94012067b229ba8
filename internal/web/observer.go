//go:build js && wasm

package web

import (
	"syscall/js"

	"github.com/ziadkadry99/craftfolio/internal/reveal"
)

// ObserveIntersections forwards IntersectionObserver entries for the given
// members to the engine. The returned func disconnects the observer.
func ObserveIntersections(e *reveal.Engine, members map[string]js.Value) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			id := entry.Get("target").Get("id").String()
			e.Intersect(id, entry.Get("isIntersecting").Bool())
		}
		return nil
	})
	observer := global.Get("IntersectionObserver").New(cb, map[string]any{"threshold": 0})
	for _, el := range members {
		observer.Call("observe", el)
	}
	return func() {
		observer.Call("disconnect")
		cb.Release()
	}
}
