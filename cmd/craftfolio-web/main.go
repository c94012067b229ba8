//go:build js && wasm

// Command craftfolio-web runs the scroll reveal and the contact form of the
// portfolio page in the browser. Build with GOOS=js GOARCH=wasm.
package main

import (
	"log"
	"syscall/js"

	"github.com/ziadkadry99/craftfolio/internal/contact"
	"github.com/ziadkadry99/craftfolio/internal/reveal"
	"github.com/ziadkadry99/craftfolio/internal/web"
)

func main() {
	layout, page := web.Register()
	scroll := reveal.NewScrollContext(web.InnerHeight())
	engine := reveal.NewEngine(layout, reveal.DefaultParams(), scroll, page)
	sched := reveal.NewScheduler(web.AnimationFrames{}, engine.Recompute)

	window := js.Global()
	web.On(window, "scroll", func(js.Value) {
		scroll.Scroll(web.ScrollY())
		sched.Request()
	}, true)
	web.On(window, "resize", func(js.Value) {
		scroll.Resize(web.InnerHeight())
		sched.Request()
	}, true)
	web.On(window, "load", func(js.Value) { sched.Request() }, false)
	web.ObserveIntersections(engine, page.Members())

	scroll.Scroll(web.ScrollY())
	sched.Request()

	if form, ok := web.FindForm(); ok {
		origin := window.Get("location").Get("origin").String()
		pipeline := contact.NewPipeline(contact.Config{
			Remote:    contact.NewHTTPRemote(origin+"/api/contact", contact.DefaultRemoteTimeout),
			Cache:     contact.NewCache(web.LocalStorage{}),
			Files:     contact.NewFileTier(web.DirectoryPicker{}),
			Download:  web.BlobDownloader{},
			UI:        form,
			UserAgent: window.Get("navigator").Get("userAgent").String(),
		})
		form.Bind(pipeline)
	}

	if !web.StartClock() {
		log.Printf("craftfolio-web: no live clock on this page")
	}

	log.Printf("craftfolio-web: tracking %d sections, %d groups", len(layout.Sections), len(layout.Groups))
	select {}
}
