package reveal

import (
	"log"
	"sync"
	"sync/atomic"
)

// Sink receives the rendered state of a revealable whenever it changes.
type Sink interface {
	Apply(r *Revealable)
}

// HeroSink is implemented by sinks that also render the hero image fade.
type HeroSink interface {
	ApplyHero(opacity float64)
}

type nopSink struct{}

func (nopSink) Apply(*Revealable) {}

// Engine turns scroll offsets and intersection changes into reveal state
// for a fixed set of registered elements.
type Engine struct {
	params Params
	scroll *ScrollContext
	sink   Sink
	hero   bool

	mu       sync.Mutex
	sections []*Revealable
	groups   []*Group
	members  map[string]*Revealable

	recomputes atomic.Int64
}

// NewEngine registers every element of the layout. Groups with an invalid
// preset fall back to the info timing.
func NewEngine(l Layout, params Params, scroll *ScrollContext, sink Sink) *Engine {
	if sink == nil {
		sink = nopSink{}
	}
	e := &Engine{
		params:  params,
		scroll:  scroll,
		sink:    sink,
		hero:    l.Hero,
		members: make(map[string]*Revealable),
	}
	for _, s := range l.Sections {
		e.sections = append(e.sections, &Revealable{ID: s.ID, Top: s.Top})
	}
	for _, gs := range l.Groups {
		preset, err := gs.ResolvePreset()
		if err != nil {
			log.Printf("reveal: %v", err)
			preset = InfoPreset
		}
		g := NewGroup(gs.Name, preset)
		for _, m := range gs.Members {
			r := g.Add(m.ID, m.Extra)
			r.Top = m.Top
			e.members[m.ID] = r
		}
		e.groups = append(e.groups, g)
	}
	return e
}

// Scroll returns the scroll context the engine reads from.
func (e *Engine) Scroll() *ScrollContext { return e.scroll }

// Recompute applies the continuous reveal to every section for the current
// scroll state. It is idempotent.
func (e *Engine) Recompute() {
	e.recomputes.Add(1)
	v := e.scroll.Snapshot()

	e.mu.Lock()
	var changed []*Revealable
	for _, s := range e.sections {
		if s.update(v, e.params) {
			changed = append(changed, s)
		}
	}
	e.mu.Unlock()

	for _, s := range changed {
		e.sink.Apply(s)
	}
	if hs, ok := e.sink.(HeroSink); e.hero && ok {
		hs.ApplyHero(HeroOpacity(v.ScrollY, v.Height))
	}
}

// Intersect handles an intersection change for a group member. Unknown ids
// are ignored and report false.
func (e *Engine) Intersect(id string, intersecting bool) bool {
	e.mu.Lock()
	r, ok := e.members[id]
	if ok {
		r.Group.intersect(r, intersecting, e.scroll.Direction())
	}
	e.mu.Unlock()
	if ok {
		e.sink.Apply(r)
	}
	return ok
}

// Recomputes returns how many times Recompute has run.
func (e *Engine) Recomputes() int64 { return e.recomputes.Load() }

// Sections returns the registered sections in page order.
func (e *Engine) Sections() []*Revealable {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Revealable, len(e.sections))
	copy(out, e.sections)
	return out
}

// Groups returns the registered stagger groups.
func (e *Engine) Groups() []*Group {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Group, len(e.groups))
	copy(out, e.groups)
	return out
}

// Member returns a group member by id.
func (e *Engine) Member(id string) (*Revealable, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.members[id]
	return r, ok
}
