// Package background mounts the particle field onto a host surface and keeps
// it animating until teardown.
package background

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/san-kum/dbmsviz/internal/field"
	"github.com/san-kum/dbmsviz/internal/frame"
)

// Acquire returns the drawing surface, or ok=false when none is available.
type Acquire func() (s field.Surface, ok bool)

// Resizable is implemented by surfaces that must be re-measured before the
// field is reseeded.
type Resizable interface {
	Resize(w, h float64)
}

// Background is a mounted particle field. The zero value is a component that
// failed to mount: every method is a no-op.
type Background struct {
	host        frame.Host
	surface     field.Surface
	field       *field.Field
	log         *slog.Logger
	handle      frame.Handle
	unsubscribe func()
	mounted     bool
	frames      int
	last        time.Duration
}

// Mount acquires a surface, seeds the field to the host viewport, draws the
// first frame and keeps requesting frames. A missing surface or viewport
// leaves the component unmounted without reporting an error.
func Mount(host frame.Host, acquire Acquire, p field.Params, rng *rand.Rand, log *slog.Logger) *Background {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	b := &Background{host: host, log: log, field: field.New(p, rng)}

	if host == nil || acquire == nil {
		log.Debug("background: no host")
		return b
	}
	s, ok := acquire()
	if !ok || s == nil {
		log.Debug("background: drawing surface unavailable")
		return b
	}
	w, h, ok := host.Viewport()
	if !ok {
		log.Debug("background: viewport not measured")
		return b
	}
	b.surface = s
	if !b.reseed(w, h) {
		return b
	}

	b.unsubscribe = host.OnResize(b.handleResize)
	b.mounted = true
	log.Debug("background: mounted", "width", w, "height", h, "nodes", b.field.Len())

	b.animate(0)
	return b
}

func (b *Background) animate(now time.Duration) {
	if !b.mounted {
		return
	}
	b.field.Frame(b.surface, now)
	b.frames++
	b.last = now
	b.handle = b.host.RequestFrame(b.animate)
}

func (b *Background) handleResize(w, h float64) {
	if !b.mounted {
		return
	}
	if b.reseed(w, h) {
		b.log.Debug("background: reseeded", "width", w, "height", h, "nodes", b.field.Len())
	}
}

func (b *Background) reseed(w, h float64) bool {
	if !b.field.Resize(w, h) {
		b.log.Debug("background: ignoring viewport", "width", w, "height", h)
		return false
	}
	if r, ok := b.surface.(Resizable); ok {
		r.Resize(w, h)
	}
	return true
}

// Teardown cancels the pending frame and the resize subscription. It is safe
// to call more than once, and on a component that never mounted.
func (b *Background) Teardown() {
	if b == nil || !b.mounted {
		return
	}
	b.mounted = false
	b.host.CancelFrame(b.handle)
	b.handle = 0
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	b.log.Debug("background: torn down", "frames", b.frames)
}

func (b *Background) Mounted() bool          { return b != nil && b.mounted }
func (b *Background) Field() *field.Field    { return b.field }
func (b *Background) Frames() int            { return b.frames }
func (b *Background) Elapsed() time.Duration { return b.last }
