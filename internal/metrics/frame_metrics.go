package metrics

import (
	"time"

	"github.com/san-kum/dbmsviz/internal/field"
)

// Connectivity is the mean number of edges per node.
type Connectivity struct {
	samples int
	total   float64
}

func (c *Connectivity) Name() string { return "connectivity" }

func (c *Connectivity) Observe(st field.Stats, _ time.Duration) {
	if st.Nodes == 0 {
		return
	}
	c.total += float64(st.Edges) / float64(st.Nodes)
	c.samples++
}

func (c *Connectivity) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

func (c *Connectivity) Reset() { c.samples, c.total = 0, 0 }

// FrameBudget is the fraction of frames whose step exceeded the budget.
type FrameBudget struct {
	Budget time.Duration
	frames int
	over   int
}

func NewFrameBudget(fps int) *FrameBudget {
	if fps <= 0 {
		fps = 60
	}
	return &FrameBudget{Budget: time.Second / time.Duration(fps)}
}

func (b *FrameBudget) Name() string { return "over_budget" }

func (b *FrameBudget) Observe(_ field.Stats, step time.Duration) {
	b.frames++
	if step > b.Budget {
		b.over++
	}
}

func (b *FrameBudget) Value() float64 {
	if b.frames == 0 {
		return 0
	}
	return float64(b.over) / float64(b.frames)
}

func (b *FrameBudget) Reset() { b.frames, b.over = 0, 0 }
