package reveal

import (
	"math"
	"time"
)

// Params controls the continuous section reveal.
type Params struct {
	// RevealFraction of the viewport height above an element's top where
	// the reveal window starts.
	RevealFraction float64 `yaml:"reveal_fraction" koanf:"reveal_fraction"`
	// FadeEndFraction of the viewport height below an element's top where
	// the reveal window ends.
	FadeEndFraction float64 `yaml:"fade_end_fraction" koanf:"fade_end_fraction"`
	// MaxOffset is the translateY applied at zero progress.
	MaxOffset float64 `yaml:"max_offset" koanf:"max_offset"`
	// VisibleThreshold is the progress at which an element becomes visible.
	VisibleThreshold float64 `yaml:"visible_threshold" koanf:"visible_threshold"`
}

// DefaultParams returns the reveal parameters used by the site.
func DefaultParams() Params {
	return Params{
		RevealFraction:   0.6,
		FadeEndFraction:  0.2,
		MaxOffset:        50,
		VisibleThreshold: 0.9,
	}
}

// Window is the scroll range over which an element's progress goes from 0 to 1.
type Window struct {
	Start float64
	End   float64
}

// Window returns the reveal window for an element whose top offset is top.
func (p Params) Window(top, height float64) Window {
	return Window{
		Start: top - p.RevealFraction*height,
		End:   top + p.FadeEndFraction*height,
	}
}

// Progress returns the clamped reveal progress at scrollY.
func (p Params) Progress(scrollY, top, height float64) float64 {
	w := p.Window(top, height)
	if w.End <= w.Start {
		if scrollY >= w.Start {
			return 1
		}
		return 0
	}
	return clamp((scrollY-w.Start)/(w.End-w.Start), 0, 1)
}

// Offset returns the translateY for a progress value.
func (p Params) Offset(progress float64) float64 {
	return (1 - clamp(progress, 0, 1)) * p.MaxOffset
}

// Revealable is an element tracked by the engine. Sections are driven by
// scroll offset; group members are driven by intersection changes.
type Revealable struct {
	ID    string
	Top   float64
	Group *Group
	Index int
	Extra time.Duration

	Progress float64
	Offset   float64
	Visible  bool
	Delay    time.Duration
}

// update applies the continuous reveal rules for the given viewport and
// reports whether the rendered state changed. Visibility is only cleared
// above the window; inside it, it latches once the threshold is crossed.
func (r *Revealable) update(v Viewport, p Params) bool {
	prevOffset, prevVisible := r.Offset, r.Visible
	w := p.Window(r.Top, v.Height)
	r.Progress = p.Progress(v.ScrollY, r.Top, v.Height)

	switch {
	case v.ScrollY < w.Start:
		r.Offset = p.MaxOffset
		r.Visible = false
	case v.ScrollY > w.End:
		r.Offset = 0
		r.Visible = true
	default:
		r.Offset = p.Offset(r.Progress)
		if r.Progress >= p.VisibleThreshold {
			r.Visible = true
		}
	}
	return r.Offset != prevOffset || r.Visible != prevVisible
}

// HeroOpacity returns the hero image opacity at scrollY. The image fades
// over the first viewport height and never drops below 0.2.
func HeroOpacity(scrollY, height float64) float64 {
	const start, floor = 0.5, 0.2
	if height <= start {
		if scrollY <= start {
			return 1
		}
		return floor
	}
	return clamp(1-(scrollY-start)/(height-start), floor, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
