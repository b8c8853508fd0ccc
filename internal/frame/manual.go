package frame

import "time"

// Manual is a Host advanced explicitly by its owner. It never spawns
// goroutines: frames fire inside Advance and resize listeners inside
// SetViewport, on the caller's goroutine.
type Manual struct {
	registry
}

func NewManual() *Manual {
	return &Manual{}
}

// Advance fires every frame requested before the call and returns how many
// callbacks ran.
func (m *Manual) Advance(now time.Duration) int {
	return m.fire(now)
}

// SetViewport records a new size and notifies resize listeners. The very
// first measurement is recorded without notification, mirroring a page
// that already has a size when components mount.
func (m *Manual) SetViewport(w, h float64) {
	_, _, known := m.Viewport()
	m.setViewport(w, h)
	if known {
		m.notify(w, h)
	}
}
