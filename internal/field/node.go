package field

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Node is one simulated point.
type Node struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
	Phase  float64
}

func newNode(rng *rand.Rand, w, h float64, p Params) Node {
	return Node{
		Pos: r2.Vec{X: rng.Float64() * w, Y: rng.Float64() * h},
		Vel: r2.Vec{
			X: (rng.Float64()*2 - 1) * p.MaxSpeed,
			Y: (rng.Float64()*2 - 1) * p.MaxSpeed,
		},
		Radius: p.RadiusMin + rng.Float64()*p.RadiusSpread,
		Phase:  rng.Float64() * 2 * math.Pi,
	}
}

// advance moves n by one frame inside [0,w]×[0,h], reflecting the velocity
// component of any axis that touched or crossed an edge.
func (n *Node) advance(w, h float64) {
	n.Pos = r2.Add(n.Pos, n.Vel)

	if n.Pos.X <= 0 || n.Pos.X >= w {
		n.Vel.X = -n.Vel.X
	}
	if n.Pos.Y <= 0 || n.Pos.Y >= h {
		n.Vel.Y = -n.Vel.Y
	}

	n.Pos.X = clamp(n.Pos.X, 0, w)
	n.Pos.Y = clamp(n.Pos.Y, 0, h)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
