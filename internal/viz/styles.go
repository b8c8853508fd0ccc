package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// Glass panel effect with subtle border
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(1, 2)

	// Code block for SQL snippets
	CodeBlock = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1)

	// Subtle muted text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ca3af"))

	// Key hint style
	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6b7280")).
		Italic(true)

	// Error line under the form
	ErrorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))
)

// NavStyles returns the active and idle tab styles for theme.
func NavStyles(t Theme) (active, idle lipgloss.Style) {
	active = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(t.Primary).
		Padding(0, 2)
	idle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 2)
	return active, idle
}

// GradientText creates a gradient effect on text using color interpolation
// through up to three stops.
func GradientText(text string, stops ...lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(stops) == 0 {
		return text
	}

	cols := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(string(s))
		if err != nil {
			c = colorful.Color{R: 1, G: 1, B: 1}
		}
		cols = append(cols, c)
	}

	var result strings.Builder
	n := len(runes)
	for i, r := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := sample(cols, t)
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex()))
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}

func sample(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	seg := t * float64(len(stops)-1)
	i := int(seg)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLab(stops[i+1], seg-float64(i)).Clamped()
}

// Decorative separator
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
