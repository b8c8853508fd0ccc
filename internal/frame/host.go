package frame

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidFPS indicates a non-positive frame rate.
var ErrInvalidFPS = errors.New("frame: fps must be positive")

// FrameFunc receives the host's elapsed time at the moment the frame fires.
type FrameFunc func(now time.Duration)

// ResizeFunc receives the new viewport size.
type ResizeFunc func(w, h float64)

// Handle identifies a requested frame. The zero Handle is never issued.
type Handle uint64

// Host schedules frame callbacks and publishes viewport changes.
type Host interface {
	// RequestFrame schedules fn for the next frame only.
	RequestFrame(fn FrameFunc) Handle
	// CancelFrame drops a pending request. Unknown handles are ignored.
	CancelFrame(h Handle)
	// Viewport reports the current size; ok is false until a size is known.
	Viewport() (w, h float64, ok bool)
	// OnResize subscribes fn to viewport changes until unsubscribe is called.
	OnResize(fn ResizeFunc) (unsubscribe func())
}

type request struct {
	handle Handle
	fn     FrameFunc
}

type listener struct {
	id int
	fn ResizeFunc
}

// registry holds the pending frames, resize listeners and viewport shared by
// every host implementation.
type registry struct {
	mu         sync.Mutex
	nextHandle Handle
	pending    []request
	inFlight   map[Handle]bool
	nextID     int
	listeners  []listener
	w, h       float64
	measured   bool
}

func (r *registry) RequestFrame(fn FrameFunc) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextHandle++
	r.pending = append(r.pending, request{handle: r.nextHandle, fn: fn})
	return r.nextHandle
}

func (r *registry) CancelFrame(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, req := range r.pending {
		if req.handle == h {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return
		}
	}
	if _, ok := r.inFlight[h]; ok {
		r.inFlight[h] = false
	}
}

func (r *registry) Viewport() (float64, float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w, r.h, r.measured
}

func (r *registry) OnResize(fn ResizeFunc) func() {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, listener{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, l := range r.listeners {
				if l.id == id {
					r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Pending reports how many frame requests are waiting to fire.
func (r *registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Listeners reports how many resize subscriptions are active.
func (r *registry) Listeners() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}

func (r *registry) setViewport(w, h float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w, r.h, r.measured = w, h, true
}

// fire runs the requests pending at call time. Requests made by the callbacks
// themselves wait for the next call; requests canceled by an earlier callback
// in the same batch are skipped.
func (r *registry) fire(now time.Duration) int {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.inFlight = make(map[Handle]bool, len(batch))
	for _, req := range batch {
		r.inFlight[req.handle] = true
	}
	r.mu.Unlock()

	fired := 0
	for _, req := range batch {
		r.mu.Lock()
		live := r.inFlight[req.handle]
		r.mu.Unlock()
		if !live {
			continue
		}
		req.fn(now)
		fired++
	}

	r.mu.Lock()
	r.inFlight = nil
	r.mu.Unlock()
	return fired
}

func (r *registry) notify(w, h float64) {
	r.mu.Lock()
	ls := make([]listener, len(r.listeners))
	copy(ls, r.listeners)
	r.mu.Unlock()

	for _, l := range ls {
		l.fn(w, h)
	}
}
