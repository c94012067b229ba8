package reveal

// Observer derives intersection changes from member offsets, standing in
// for a browser IntersectionObserver. A member intersects while its top
// lies inside the viewport.
type Observer struct {
	engine *Engine
	inside map[string]bool
}

// NewObserver returns an observer for every group member of e. No member
// starts intersecting.
func NewObserver(e *Engine) *Observer {
	return &Observer{engine: e, inside: make(map[string]bool)}
}

// Check compares every member against the current viewport, forwards each
// change to the engine and returns the ids that changed, in group order.
func (o *Observer) Check() []string {
	v := o.engine.Scroll().Snapshot()
	var changed []string
	for _, g := range o.engine.Groups() {
		for _, m := range g.Members() {
			now := m.Top >= v.ScrollY && m.Top <= v.ScrollY+v.Height
			if now == o.inside[m.ID] {
				continue
			}
			o.inside[m.ID] = now
			o.engine.Intersect(m.ID, now)
			changed = append(changed, m.ID)
		}
	}
	return changed
}
