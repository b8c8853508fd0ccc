package field

import "image/color"

// Surface is a 2D drawing target in viewport pixel coordinates.
type Surface interface {
	Clear()
	Line(x0, y0, x1, y1, width float64, c color.NRGBA)
	Circle(x, y, r float64, c color.NRGBA)
}

// WithAlpha returns Tint at the given alpha in [0,1].
func WithAlpha(a float64) color.NRGBA {
	c := Tint
	c.A = uint8(clamp(a, 0, 1)*255 + 0.5)
	return c
}
