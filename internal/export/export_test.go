package export

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/san-kum/dbmsviz/internal/field"
	"github.com/san-kum/dbmsviz/internal/metrics"
	"github.com/san-kum/dbmsviz/internal/viz"
)

func TestFieldToSVG(t *testing.T) {
	f := field.New(field.StaticParams(), rand.New(rand.NewPCG(1, 1)))
	if !f.Resize(400, 300) {
		t.Fatal("resize rejected")
	}
	if f.Len() == 0 {
		t.Fatal("expected a populated field")
	}

	var alphas []string
	f.Edges(0, func(e field.Edge) {
		alphas = append(alphas, fmt.Sprintf(`stroke-opacity="%.4f"`, e.Alpha))
	})
	edges := len(alphas)

	svg := FieldToSVG(f, 0)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("malformed svg envelope")
	}
	if n := strings.Count(svg, "<line "); n != edges {
		t.Errorf("expected %d lines, got %d", edges, n)
	}
	if n := strings.Count(svg, "<circle "); n != f.Len() {
		t.Errorf("expected %d circles, got %d", f.Len(), n)
	}
	if !strings.Contains(svg, `width="400" height="300"`) {
		t.Error("svg size does not match viewport")
	}
	for _, a := range alphas {
		if !strings.Contains(svg, a) {
			t.Errorf("missing edge with %s", a)
		}
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1) != "" {
		t.Error("nil canvas should render empty")
	}

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 2)
	if n := strings.Count(svg, "<circle "); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
}

func TestStatsToCSV(t *testing.T) {
	var buf bytes.Buffer
	frames := []metrics.FrameStat{
		{Frame: 0, Nodes: 32, Edges: 10, MeanAlpha: 0.1},
		{Frame: 1, ElapsedMs: 16, Nodes: 32, Edges: 12, MeanAlpha: 0.2},
	}
	if err := StatsToCSV(&buf, frames); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,elapsed_ms,nodes,edges") {
		t.Errorf("unexpected header %q", lines[0])
	}

	buf.Reset()
	if err := StatsToCSV(&buf, nil); err != nil || buf.Len() != 0 {
		t.Errorf("expected empty output for no frames, got %q (%v)", buf.String(), err)
	}
}
