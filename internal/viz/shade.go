package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/dbmsviz/internal/field"
)

const shadeLevels = 8

// Shader maps cell alpha onto a ramp of foreground styles blending the field
// tint over the theme background.
type Shader struct {
	levels  [shadeLevels]lipgloss.Style
	ceiling float64
}

// NewShader builds a ramp for theme. Alphas at or above ceiling render at
// full tint.
func NewShader(theme Theme, ceiling float64) *Shader {
	if ceiling <= 0 {
		ceiling = 1
	}
	bg, err := colorful.Hex(string(theme.Background))
	if err != nil {
		bg = colorful.Color{}
	}
	tint := colorful.Color{
		R: float64(field.Tint.R) / 255,
		G: float64(field.Tint.G) / 255,
		B: float64(field.Tint.B) / 255,
	}

	s := &Shader{ceiling: ceiling}
	for i := range s.levels {
		t := float64(i+1) / shadeLevels
		c := bg.BlendRgb(tint, t).Clamped()
		s.levels[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return s
}

// Level returns the ramp index for alpha, or -1 when nothing should show.
func (s *Shader) Level(alpha float64) int {
	if alpha <= 0 {
		return -1
	}
	l := int(math.Ceil(alpha/s.ceiling*shadeLevels)) - 1
	if l < 0 {
		l = 0
	}
	if l >= shadeLevels {
		l = shadeLevels - 1
	}
	return l
}

// RenderRow renders cells [from, to) of a canvas row, grouping runs of equal
// shade into one styled span.
func (s *Shader) RenderRow(c *Canvas, row, from, to int) string {
	if from < 0 {
		from = 0
	}
	pad := 0
	if to > c.Width {
		pad = to - max(c.Width, from)
		to = c.Width
	}

	var b, run strings.Builder
	cur := -1
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if cur < 0 {
			b.WriteString(run.String())
		} else {
			b.WriteString(s.levels[cur].Render(run.String()))
		}
		run.Reset()
	}

	for col := from; col < to; col++ {
		r, alpha := c.Cell(row, col)
		lvl := -1
		if r != blank {
			lvl = s.Level(alpha)
		}
		if lvl != cur {
			flush()
			cur = lvl
		}
		if lvl < 0 {
			run.WriteByte(' ')
		} else {
			run.WriteRune(r)
		}
	}
	flush()
	// Pad past the canvas edge so overlays stay aligned.
	b.WriteString(strings.Repeat(" ", pad))
	return b.String()
}

// Render renders the whole canvas.
func (s *Shader) Render(c *Canvas) string {
	rows := make([]string, c.Height)
	for i := range rows {
		rows[i] = s.RenderRow(c, i, 0, c.Width)
	}
	return strings.Join(rows, "\n")
}
