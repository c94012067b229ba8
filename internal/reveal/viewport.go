package reveal

import "sync"

// Direction is the vertical scroll direction derived from consecutive offsets.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Viewport is an immutable snapshot of the scroll state for one computation.
type Viewport struct {
	ScrollY   float64
	Height    float64
	Direction Direction
}

// ScrollContext holds the scroll state shared by every reveal computation.
// It is passed explicitly to the engine and to intersection handlers instead
// of living in a package-level variable.
type ScrollContext struct {
	mu        sync.RWMutex
	scrollY   float64
	height    float64
	direction Direction
}

// NewScrollContext returns a context positioned at the top of the page,
// scrolling down.
func NewScrollContext(height float64) *ScrollContext {
	return &ScrollContext{height: height}
}

// Scroll records a new vertical offset and returns the direction derived
// from the previous one. An unchanged offset keeps the last direction.
func (c *ScrollContext) Scroll(y float64) Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case y > c.scrollY:
		c.direction = Down
	case y < c.scrollY:
		c.direction = Up
	}
	c.scrollY = y
	return c.direction
}

// Resize records a new viewport height.
func (c *ScrollContext) Resize(height float64) {
	c.mu.Lock()
	c.height = height
	c.mu.Unlock()
}

// Direction returns the current scroll direction.
func (c *ScrollContext) Direction() Direction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.direction
}

// Snapshot returns the current scroll state.
func (c *ScrollContext) Snapshot() Viewport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Viewport{ScrollY: c.scrollY, Height: c.height, Direction: c.direction}
}
