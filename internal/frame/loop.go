package frame

import (
	"context"
	"time"
)

// Loop is a Host whose frames are driven by a ticker. Frame callbacks and
// resize listeners run only on the goroutine executing Run.
type Loop struct {
	registry
	interval time.Duration
	start    time.Time
	resized  chan struct{}
	now      func() time.Time
}

// NewLoop returns a Loop ticking fps times per second.
func NewLoop(fps int) (*Loop, error) {
	if fps <= 0 {
		return nil, ErrInvalidFPS
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		resized:  make(chan struct{}, 1),
		now:      time.Now,
	}, nil
}

// Resize records a new viewport size. Listeners are notified on the Run
// goroutine; bursts of resizes before the loop wakes coalesce into one
// notification carrying the latest size.
func (l *Loop) Resize(w, h float64) {
	_, _, known := l.Viewport()
	l.setViewport(w, h)
	if !known {
		return
	}
	select {
	case l.resized <- struct{}{}:
	default:
	}
}

// Run fires frames until ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	l.start = l.now()
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.resized:
			w, h, _ := l.Viewport()
			l.notify(w, h)
		case t := <-ticker.C:
			l.fire(t.Sub(l.start))
		}
	}
}
