package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/dbmsviz/internal/field"
	"github.com/san-kum/dbmsviz/internal/viz"
)

const svgBackground = "#111827"

// FieldToSVG renders one frame of f at elapsed time t as vector SVG: one
// <line> per edge and one <circle> per node, alpha carried in the opacity
// attributes.
func FieldToSVG(f *field.Field, t time.Duration) string {
	w, h := f.Bounds()
	p := f.Params()
	tint := fmt.Sprintf("rgb(%d,%d,%d)", field.Tint.R, field.Tint.G, field.Tint.B)
	nodes := f.Nodes()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke="%s" stroke-width="%.2f">
`, w, h, w, h, svgBackground, tint, p.LineWidth))

	f.Edges(t, func(e field.Edge) {
		a, b := nodes[e.A].Pos, nodes[e.B].Pos
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-opacity="%.4f"/>
`, a.X, a.Y, b.X, b.Y, e.Alpha))
	})

	sb.WriteString(fmt.Sprintf("</g>\n<g fill=\"%s\" fill-opacity=\"%.2f\">\n", tint, p.NodeAlpha))
	for _, n := range nodes {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f"/>
`, n.Pos.X, n.Pos.Y, f.PulseRadius(n, t)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="rgb(%d,%d,%d)">
`, width, height, width, height, svgBackground, field.Tint.R, field.Tint.G, field.Tint.B))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	// Convert each braille character to dots, shaded by the cell alpha
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r, alpha := canvas.Cell(row, col)
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill-opacity="%.3f"/>
`, cx, cy, dotRadius, alpha))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
