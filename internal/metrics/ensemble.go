package metrics

import (
	"context"
	"errors"
	"image/color"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/san-kum/dbmsviz/internal/field"
)

var (
	ErrInvalidViewport = errors.New("metrics: invalid viewport")
	ErrInvalidRuns     = errors.New("metrics: runs must be positive")
)

// Ensemble runs independently seeded fields concurrently, one goroutine per
// run. Run i is seeded with SeedStart+i.
type Ensemble struct {
	Params    field.Params
	Width     float64
	Height    float64
	Runs      int
	SeedStart uint64
	// NewSurface gives each run its own surface. Nil draws nowhere.
	NewSurface func() field.Surface
	// NewMetrics gives each run its own metric set.
	NewMetrics func() []Metric
}

func (e *Ensemble) Run(ctx context.Context, frames int, interval time.Duration) ([]*Recorder, error) {
	if e.Runs <= 0 {
		return nil, ErrInvalidRuns
	}
	recs := make([]*Recorder, e.Runs)
	errs := make([]error, e.Runs)

	var wg sync.WaitGroup
	for i := 0; i < e.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			s := e.SeedStart + uint64(idx)
			f := field.New(e.Params, rand.New(rand.NewPCG(s, s)))
			if !f.Resize(e.Width, e.Height) {
				errs[idx] = ErrInvalidViewport
				return
			}

			var surface field.Surface = discard{}
			if e.NewSurface != nil {
				surface = e.NewSurface()
			}
			var ms []Metric
			if e.NewMetrics != nil {
				ms = e.NewMetrics()
			}

			recs[idx] = NewRecorder(ms...)
			Run(f, surface, frames, interval, recs[idx])
		}(i)
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return recs, nil
}

type discard struct{}

func (discard) Clear()                                    {}
func (discard) Line(_, _, _, _, _ float64, _ color.NRGBA) {}
func (discard) Circle(_, _, _ float64, _ color.NRGBA)     {}
