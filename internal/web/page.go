//go:build js && wasm

package web

import (
	"fmt"
	"strconv"
	"syscall/js"
	"time"

	"github.com/ziadkadry99/craftfolio/internal/reveal"
)

// Selectors of the tracked page elements.
const (
	SectionSelector = ".content-section"
	HeroSelector    = `.hero img[alt="craftfolio"]`
	GroupSelector   = "[data-stagger]"
	MemberSelector  = "[data-stagger-item]"
)

// Page holds the registered elements and renders reveal state onto them.
// It implements reveal.Sink and reveal.HeroSink.
type Page struct {
	elements map[string]js.Value
	members  map[string]js.Value
	hero     js.Value
}

// Register queries the document once and returns the layout for the
// engine along with the page that renders it. Elements without an id get
// a generated one.
func Register() (reveal.Layout, *Page) {
	p := &Page{
		elements: make(map[string]js.Value),
		members:  make(map[string]js.Value),
	}
	l := reveal.Layout{ViewportHeight: InnerHeight()}

	if hero, ok := Query(HeroSelector); ok {
		p.hero = hero
		l.Hero = true
	}

	for i, el := range QueryAll(js.Null(), SectionSelector) {
		id := ensureID(el, fmt.Sprintf("section-%d", i))
		p.elements[id] = el
		l.Sections = append(l.Sections, reveal.SectionSpec{ID: id, Top: documentTop(el)})
	}

	for gi, container := range QueryAll(js.Null(), GroupSelector) {
		name := ensureID(container, fmt.Sprintf("group-%d", gi))
		gs := reveal.GroupSpec{Name: name, Preset: container.Get("dataset").Get("stagger").String()}
		for mi, el := range QueryAll(container, MemberSelector) {
			id := ensureID(el, fmt.Sprintf("%s-%d", name, mi))
			p.members[id] = el
			gs.Members = append(gs.Members, reveal.MemberSpec{
				ID:    id,
				Top:   documentTop(el),
				Extra: extraDelay(el),
			})
		}
		l.Groups = append(l.Groups, gs)
	}
	return l, p
}

// Members returns the registered group member elements by id.
func (p *Page) Members() map[string]js.Value { return p.members }

func (p *Page) Apply(r *reveal.Revealable) {
	if r.Group != nil {
		el, ok := p.members[r.ID]
		if !ok {
			return
		}
		el.Get("style").Set("transitionDelay", fmt.Sprintf("%dms", r.Delay.Milliseconds()))
		el.Get("classList").Call("toggle", "visible", r.Visible)
		return
	}
	el, ok := p.elements[r.ID]
	if !ok {
		return
	}
	el.Get("style").Set("transform", fmt.Sprintf("translateY(%gpx)", r.Offset))
	el.Get("classList").Call("toggle", "visible", r.Visible)
}

func (p *Page) ApplyHero(opacity float64) {
	if p.hero.IsUndefined() || p.hero.IsNull() {
		return
	}
	p.hero.Get("style").Set("opacity", opacity)
}

func ensureID(el js.Value, fallback string) string {
	id := el.Get("id").String()
	if id == "" {
		id = fallback
		el.Set("id", id)
	}
	return id
}

func documentTop(el js.Value) float64 {
	return el.Call("getBoundingClientRect").Get("top").Float() + ScrollY()
}

// extraDelay reads data-stagger-extra, in milliseconds.
func extraDelay(el js.Value) time.Duration {
	v := el.Get("dataset").Get("staggerExtra")
	if v.IsUndefined() {
		return 0
	}
	ms, err := strconv.Atoi(v.String())
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
