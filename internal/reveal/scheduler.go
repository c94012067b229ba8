package reveal

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// FrameRequester queues a callback for the next display frame, like
// requestAnimationFrame in a browser.
type FrameRequester interface {
	RequestFrame(fn func())
}

// Scheduler coalesces scroll, resize and load events into at most one
// recompute per frame. Events mark the engine dirty; the frame callback
// clears the flag and recomputes with the latest scroll state.
type Scheduler struct {
	frames    FrameRequester
	recompute func()
	scheduled atomic.Bool
}

// NewScheduler returns a scheduler that runs recompute on frames.
func NewScheduler(frames FrameRequester, recompute func()) *Scheduler {
	return &Scheduler{frames: frames, recompute: recompute}
}

// Request marks the state dirty. It reports whether a new frame was queued.
func (s *Scheduler) Request() bool {
	if !s.scheduled.CompareAndSwap(false, true) {
		return false
	}
	s.frames.RequestFrame(func() {
		s.scheduled.Store(false)
		s.recompute()
	})
	return true
}

// Pending reports whether a recompute is queued.
func (s *Scheduler) Pending() bool { return s.scheduled.Load() }

// ManualFrames is a FrameRequester advanced explicitly with Flush.
type ManualFrames struct {
	mu      sync.Mutex
	pending []func()
}

func (m *ManualFrames) RequestFrame(fn func()) {
	m.mu.Lock()
	m.pending = append(m.pending, fn)
	m.mu.Unlock()
}

// Flush renders one frame and returns the number of callbacks it ran.
func (m *ManualFrames) Flush() int {
	m.mu.Lock()
	fns := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// FrameLoop is a FrameRequester driven by a fixed-rate ticker.
type FrameLoop struct {
	interval time.Duration

	mu      sync.Mutex
	pending []func()
	frames  atomic.Uint64
}

// NewFrameLoop returns a loop ticking every interval. A non-positive
// interval defaults to 60 frames per second.
func NewFrameLoop(interval time.Duration) *FrameLoop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &FrameLoop{interval: interval}
}

func (l *FrameLoop) RequestFrame(fn func()) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
}

// Frames returns the number of frames rendered so far.
func (l *FrameLoop) Frames() uint64 { return l.frames.Load() }

// Run renders frames until ctx is cancelled.
func (l *FrameLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.mu.Lock()
			fns := l.pending
			l.pending = nil
			l.mu.Unlock()
			for _, fn := range fns {
				fn()
			}
			l.frames.Add(1)
		}
	}
}
