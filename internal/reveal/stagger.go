package reveal

import "time"

// Preset is the per-group stagger timing.
type Preset struct {
	Step time.Duration `yaml:"step" koanf:"step"`
	Cap  time.Duration `yaml:"cap" koanf:"cap"`
}

// Stagger presets used on the site.
var (
	InfoPreset = Preset{Step: 90 * time.Millisecond, Cap: 800 * time.Millisecond}
	FormPreset = Preset{Step: 80 * time.Millisecond, Cap: 900 * time.Millisecond}
	RichPreset = Preset{Step: 80 * time.Millisecond, Cap: 3000 * time.Millisecond}
)

// ChosenIndex maps a member index to its stagger position: forward order
// when scrolling down, reverse order when scrolling up.
func ChosenIndex(index, size int, d Direction) int {
	if index < 0 || index >= size {
		return 0
	}
	if d == Up {
		return size - 1 - index
	}
	return index
}

// Delay returns the transition delay for a member. It is a pure function of
// its inputs.
func (p Preset) Delay(index, size int, d Direction, extra time.Duration) time.Duration {
	d0 := p.Step * time.Duration(ChosenIndex(index, size, d))
	if d0 > p.Cap {
		d0 = p.Cap
	}
	return d0 + extra
}

// Group is an ordered set of revealables that animate in sequence. The
// order is fixed when members are added and never changes afterwards.
type Group struct {
	Name    string
	Preset  Preset
	members []*Revealable
}

// NewGroup creates an empty stagger group.
func NewGroup(name string, preset Preset) *Group {
	return &Group{Name: name, Preset: preset}
}

// Add appends a member and returns it.
func (g *Group) Add(id string, extra time.Duration) *Revealable {
	r := &Revealable{ID: id, Group: g, Index: len(g.members), Extra: extra}
	g.members = append(g.members, r)
	return r
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.members) }

// Members returns the members in registration order.
func (g *Group) Members() []*Revealable {
	out := make([]*Revealable, len(g.members))
	copy(out, g.members)
	return out
}

// intersect recomputes a member's delay for the current direction and sets
// its visibility from the intersection state. Leaving the viewport clears
// visibility so re-entry replays the animation.
func (g *Group) intersect(r *Revealable, intersecting bool, d Direction) {
	r.Delay = g.Preset.Delay(r.Index, len(g.members), d, r.Extra)
	r.Visible = intersecting
}
