package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// surface draws field frames into the current raylib frame. It must only be
// used between BeginDrawing and EndDrawing.
type surface struct {
	bg rl.Color
}

func (s surface) Clear() { rl.ClearBackground(s.bg) }

func (s surface) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x0), float32(y0)),
		rl.NewVector2(float32(x1), float32(y1)),
		float32(width),
		rl.NewColor(c.R, c.G, c.B, c.A),
	)
}

func (s surface) Circle(x, y, r float64, c color.NRGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), rl.NewColor(c.R, c.G, c.B, c.A))
}
