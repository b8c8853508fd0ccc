package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// compose lays the foreground block over the background canvas. Rows the
// block leaves blank show the canvas across the full width; other rows show
// canvas on either side of the block.
func (m Model) compose(lines []string, w int) string {
	left := (m.width - w) / 2
	if left < 0 {
		left = 0
	}
	top := 1
	if len(lines)+top > m.height {
		top = 0
	}

	c := m.stage.canvas
	rows := make([]string, m.height)
	for r := range rows {
		i := r - top
		if i < 0 || i >= len(lines) || strings.TrimSpace(lines[i]) == "" {
			rows[r] = m.shader.RenderRow(c, r, 0, m.width)
			continue
		}
		line := lines[i]
		pad := w - lipgloss.Width(line)
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows[r] = m.shader.RenderRow(c, r, 0, left) + line + m.shader.RenderRow(c, r, left+w, m.width)
	}
	return strings.Join(rows, "\n")
}
