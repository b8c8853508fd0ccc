package viz

import (
	"image/color"
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille grid that doubles as a field.Surface. Field
// coordinates are viewport pixels; Scale pixels map onto one Braille dot.
// Each cell remembers the strongest alpha drawn into it so the terminal can
// shade it.
type Canvas struct {
	Width, Height int
	Scale         float64
	Grid          [][]rune
	Alpha         [][]float64
	// MinAlpha drops strokes too faint to show as a whole Braille dot.
	MinAlpha float64
}

// NewCanvas returns a canvas of w×h cells at one pixel per dot.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Scale: 1}
	c.alloc(w, h)
	return c
}

// NewScaledCanvas returns a canvas of w×h cells where every dot covers
// scale×scale viewport pixels.
func NewScaledCanvas(w, h int, scale float64) *Canvas {
	c := NewCanvas(w, h)
	if scale > 0 {
		c.Scale = scale
	}
	return c
}

func (c *Canvas) alloc(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Alpha = make([][]float64, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Alpha[i] = make([]float64, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Viewport is the pixel extent covered by the canvas.
func (c *Canvas) Viewport() (w, h float64) {
	return float64(c.Width) * 2 * c.Scale, float64(c.Height) * 4 * c.Scale
}

// Resize reallocates the grid to cover a w×h pixel viewport.
func (c *Canvas) Resize(w, h float64) {
	cols := int(math.Ceil(w / (2 * c.Scale)))
	rows := int(math.Ceil(h / (4 * c.Scale)))
	if cols == c.Width && rows == c.Height {
		return
	}
	c.alloc(cols, rows)
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.plot(x, y, 1)
}

func (c *Canvas) plot(x, y int, alpha float64) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	if alpha > c.Alpha[row][col] {
		c.Alpha[row][col] = alpha
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	mask := ^rune(pixelMap[subY][subX])
	c.Grid[row][col] &= mask
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
	if c.Grid[row][col] == blank {
		c.Alpha[row][col] = 0
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Alpha[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.line(x0, y0, x1, y1, 1)
}

func (c *Canvas) line(x0, y0, x1, y1 int, alpha float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.plot(x0, y0, alpha)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Line draws a stroke given in viewport pixels. Stroke width is below one dot
// at any useful scale and is ignored.
func (c *Canvas) Line(x0, y0, x1, y1, _ float64, col color.NRGBA) {
	alpha := float64(col.A) / 255
	if alpha <= c.MinAlpha {
		return
	}
	c.line(c.dot(x0), c.dot(y0), c.dot(x1), c.dot(y1), alpha)
}

// Circle fills a disc given in viewport pixels. Discs smaller than a dot
// still mark their centre.
func (c *Canvas) Circle(x, y, r float64, col color.NRGBA) {
	alpha := float64(col.A) / 255
	cx, cy := c.dot(x), c.dot(y)
	c.plot(cx, cy, alpha)

	rd := r / c.Scale
	span := int(math.Ceil(rd))
	for dy := -span; dy <= span; dy++ {
		for dx := -span; dx <= span; dx++ {
			if float64(dx*dx+dy*dy) <= rd*rd {
				c.plot(cx+dx, cy+dy, alpha)
			}
		}
	}
}

// Cell returns the glyph and alpha at a cell.
func (c *Canvas) Cell(row, col int) (rune, float64) {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return blank, 0
	}
	return c.Grid[row][col], c.Alpha[row][col]
}

func (c *Canvas) dot(v float64) int {
	return int(math.Floor(v / c.Scale))
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
