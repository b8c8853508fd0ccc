package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/dbmsviz/internal/field"
)

// Metric accumulates one scalar over observed frames.
type Metric interface {
	Name() string
	Observe(st field.Stats, step time.Duration)
	Value() float64
	Reset()
}

// FrameStat is one recorded frame.
type FrameStat struct {
	Frame     int     `csv:"frame"`
	ElapsedMs float64 `csv:"elapsed_ms"`
	Nodes     int     `csv:"nodes"`
	Edges     int     `csv:"edges"`
	MeanAlpha float64 `csv:"mean_alpha"`
	StepUs    float64 `csv:"step_us"`
}

// Recorder keeps every frame and feeds its metrics.
type Recorder struct {
	frames  []FrameStat
	metrics []Metric
}

func NewRecorder(ms ...Metric) *Recorder {
	return &Recorder{metrics: ms}
}

func (r *Recorder) Observe(frame int, t time.Duration, st field.Stats, step time.Duration) {
	r.frames = append(r.frames, FrameStat{
		Frame:     frame,
		ElapsedMs: float64(t) / float64(time.Millisecond),
		Nodes:     st.Nodes,
		Edges:     st.Edges,
		MeanAlpha: st.MeanAlpha,
		StepUs:    float64(step) / float64(time.Microsecond),
	})
	for _, m := range r.metrics {
		m.Observe(st, step)
	}
}

func (r *Recorder) Frames() []FrameStat { return r.frames }

// Values returns each metric's current value by name.
func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Series extracts one column: "edges", "alpha", "step" or "nodes".
func (r *Recorder) Series(name string) []float64 {
	out := make([]float64, len(r.frames))
	for i, f := range r.frames {
		switch name {
		case "edges":
			out[i] = float64(f.Edges)
		case "alpha":
			out[i] = f.MeanAlpha
		case "step":
			out[i] = f.StepUs
		case "nodes":
			out[i] = float64(f.Nodes)
		}
	}
	return out
}

// Summary is the aggregate of a recording.
type Summary struct {
	Frames    int
	Nodes     int
	MeanEdges float64
	StdEdges  float64
	MaxEdges  int
	MeanAlpha float64
	MeanStep  time.Duration
	StdStep   time.Duration
}

func (r *Recorder) Summary() Summary {
	s := Summary{Frames: len(r.frames)}
	if s.Frames == 0 {
		return s
	}
	s.Nodes = r.frames[len(r.frames)-1].Nodes
	for _, f := range r.frames {
		if f.Edges > s.MaxEdges {
			s.MaxEdges = f.Edges
		}
	}
	s.MeanEdges, s.StdEdges = stat.MeanStdDev(r.Series("edges"), nil)
	s.MeanAlpha = stat.Mean(r.Series("alpha"), nil)
	meanStep, stdStep := stat.MeanStdDev(r.Series("step"), nil)
	s.MeanStep = time.Duration(meanStep * float64(time.Microsecond))
	s.StdStep = time.Duration(stdStep * float64(time.Microsecond))
	return s
}

// Run drives f for frames steps against s, advancing virtual time by
// interval per frame, and records each frame.
func Run(f *field.Field, s field.Surface, frames int, interval time.Duration, r *Recorder) {
	for i := 0; i < frames; i++ {
		t := time.Duration(i) * interval
		start := time.Now()
		f.Frame(s, t)
		step := time.Since(start)
		r.Observe(i, t, f.Stats(t), step)
	}
}
