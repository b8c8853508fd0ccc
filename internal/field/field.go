package field

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Field is the particle population and the viewport it lives in.
type Field struct {
	params Params
	rng    *rand.Rand
	nodes  []Node
	w, h   float64
}

// Edge is a pair of nodes close enough to connect, with its final alpha.
type Edge struct {
	A, B     int
	Distance float64
	Alpha    float64
}

// Stats summarises one frame.
type Stats struct {
	Nodes     int
	Edges     int
	MeanAlpha float64
}

// New returns an empty field. Call Resize to seed it.
func New(p Params, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{params: p, rng: rng}
}

// NodeCount is floor(w*h/density).
func NodeCount(w, h, density float64) int {
	if !validExtent(w) || !validExtent(h) || !(density > 0) {
		return 0
	}
	return int(math.Floor(w * h / density))
}

// Resize adopts a new viewport and regenerates every node from fresh random
// initial conditions. Non-positive or non-finite sizes leave the field
// untouched and report false.
func (f *Field) Resize(w, h float64) bool {
	if !validExtent(w) || !validExtent(h) {
		return false
	}
	f.w, f.h = w, h

	count := NodeCount(w, h, f.params.Density)
	f.nodes = make([]Node, count)
	for i := range f.nodes {
		f.nodes[i] = newNode(f.rng, w, h, f.params)
	}
	return true
}

// Step advances every node by its velocity. Movement is a fixed delta per
// call, independent of wall-clock time.
func (f *Field) Step() {
	for i := range f.nodes {
		f.nodes[i].advance(f.w, f.h)
	}
}

// Edges calls fn for every unordered pair closer than the connection
// threshold, passing the alpha the pair is drawn with at elapsed time t.
func (f *Field) Edges(t time.Duration, fn func(Edge)) {
	threshold := f.params.ConnectDistance
	for i := 0; i < len(f.nodes); i++ {
		a := f.nodes[i].Pos
		for j := i + 1; j < len(f.nodes); j++ {
			d := r2.Norm(r2.Sub(a, f.nodes[j].Pos))
			if d >= threshold {
				continue
			}
			alpha := EdgeOpacity(d, threshold) * f.params.EdgeAlpha
			if f.params.Shimmer {
				alpha *= f.Shimmer(t, a.X)
			}
			fn(Edge{A: i, B: j, Distance: d, Alpha: alpha})
		}
	}
}

// EdgeOpacity is 1 - d/threshold below the threshold and 0 at or above it.
func EdgeOpacity(d, threshold float64) float64 {
	if d >= threshold || threshold <= 0 {
		return 0
	}
	return 1 - d/threshold
}

// Shimmer is a factor in [0,1] oscillating with time, phase shifted by the x
// coordinate of the edge's first endpoint.
func (f *Field) Shimmer(t time.Duration, x float64) float64 {
	return (math.Sin(millis(t)/f.params.ShimmerPeriod+x/f.params.ShimmerSpatial) + 1) / 2
}

// PulseRadius is the node radius at time t.
func (f *Field) PulseRadius(n Node, t time.Duration) float64 {
	if !f.params.Pulse {
		return n.Radius
	}
	pulse := (math.Sin(millis(t)/f.params.PulsePeriod+n.Phase) + 1) / 2
	return n.Radius + pulse*f.params.PulseAmplitude
}

// Draw renders the current state at elapsed time t.
func (f *Field) Draw(s Surface, t time.Duration) {
	s.Clear()

	f.Edges(t, func(e Edge) {
		a, b := f.nodes[e.A].Pos, f.nodes[e.B].Pos
		s.Line(a.X, a.Y, b.X, b.Y, f.params.LineWidth, WithAlpha(e.Alpha))
	})

	fill := WithAlpha(f.params.NodeAlpha)
	for _, n := range f.nodes {
		s.Circle(n.Pos.X, n.Pos.Y, f.PulseRadius(n, t), fill)
	}
}

// Frame is one animation frame: clear, move, connect, draw nodes.
func (f *Field) Frame(s Surface, t time.Duration) {
	f.Step()
	f.Draw(s, t)
}

// Stats counts edges and their mean alpha at time t.
func (f *Field) Stats(t time.Duration) Stats {
	st := Stats{Nodes: len(f.nodes)}
	sum := 0.0
	f.Edges(t, func(e Edge) {
		st.Edges++
		sum += e.Alpha
	})
	if st.Edges > 0 {
		st.MeanAlpha = sum / float64(st.Edges)
	}
	return st
}

func (f *Field) Nodes() []Node          { return f.nodes }
func (f *Field) Len() int               { return len(f.nodes) }
func (f *Field) Bounds() (w, h float64) { return f.w, f.h }
func (f *Field) Params() Params         { return f.params }

func validExtent(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func millis(t time.Duration) float64 {
	return float64(t) / float64(time.Millisecond)
}
