package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestManualFiresOnlyPendingFrames(t *testing.T) {
	m := NewManual()
	calls := 0
	var loop FrameFunc
	loop = func(now time.Duration) {
		calls++
		m.RequestFrame(loop)
	}
	m.RequestFrame(loop)

	if n := m.Advance(16 * time.Millisecond); n != 1 {
		t.Fatalf("expected 1 callback, got %d", n)
	}
	if calls != 1 {
		t.Errorf("re-requested frame fired in the same advance: %d calls", calls)
	}
	if m.Pending() != 1 {
		t.Errorf("expected 1 pending frame, got %d", m.Pending())
	}

	m.Advance(32 * time.Millisecond)
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	fired := false
	h := m.RequestFrame(func(time.Duration) { fired = true })
	m.CancelFrame(h)
	m.CancelFrame(h)
	m.CancelFrame(Handle(999))

	if n := m.Advance(time.Millisecond); n != 0 || fired {
		t.Errorf("canceled frame fired (n=%d)", n)
	}
}

func TestManualCancelWithinBatch(t *testing.T) {
	m := NewManual()
	var second Handle
	secondFired := false
	m.RequestFrame(func(time.Duration) { m.CancelFrame(second) })
	second = m.RequestFrame(func(time.Duration) { secondFired = true })

	if n := m.Advance(time.Millisecond); n != 1 {
		t.Errorf("expected 1 callback, got %d", n)
	}
	if secondFired {
		t.Error("frame canceled earlier in the batch still fired")
	}
}

func TestManualResize(t *testing.T) {
	m := NewManual()
	if _, _, ok := m.Viewport(); ok {
		t.Fatal("viewport known before measurement")
	}

	var got [][2]float64
	unsubscribe := m.OnResize(func(w, h float64) { got = append(got, [2]float64{w, h}) })

	m.SetViewport(800, 600)
	if len(got) != 0 {
		t.Errorf("initial measurement notified listeners: %v", got)
	}
	m.SetViewport(1024, 768)
	if len(got) != 1 || got[0] != [2]float64{1024, 768} {
		t.Errorf("expected one 1024x768 notification, got %v", got)
	}

	unsubscribe()
	unsubscribe()
	m.SetViewport(640, 480)
	if len(got) != 1 {
		t.Errorf("unsubscribed listener still notified: %v", got)
	}
	if m.Listeners() != 0 {
		t.Errorf("expected no listeners, got %d", m.Listeners())
	}

	w, h, ok := m.Viewport()
	if !ok || w != 640 || h != 480 {
		t.Errorf("expected 640x480, got %vx%v (ok=%v)", w, h, ok)
	}
}

func TestNewLoopRejectsBadFPS(t *testing.T) {
	if _, err := NewLoop(0); err != ErrInvalidFPS {
		t.Errorf("expected ErrInvalidFPS, got %v", err)
	}
}

func TestLoopRunsFramesAndResizes(t *testing.T) {
	l, err := NewLoop(200)
	if err != nil {
		t.Fatal(err)
	}
	l.Resize(100, 100)

	var frames, resizes atomic.Int32
	done := make(chan struct{})
	var tick FrameFunc
	tick = func(time.Duration) {
		if frames.Add(1) == 3 {
			l.Resize(200, 200)
		}
		l.RequestFrame(tick)
	}
	l.RequestFrame(tick)
	l.OnResize(func(w, h float64) {
		if w == 200 && resizes.Add(1) == 1 {
			close(done)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("timed out waiting for resize")
	}
	cancel()

	if err := <-errc; err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if frames.Load() < 3 {
		t.Errorf("expected at least 3 frames, got %d", frames.Load())
	}
}
