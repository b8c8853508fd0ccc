package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(10, 10)

	if got := c.Grid[0][0]; got != blank|0x1 {
		t.Errorf("expected dot 1 in first cell, got %U", got)
	}
	if got := c.Grid[0][1]; got != blank|0x80 {
		t.Errorf("expected dot 8 in second cell, got %U", got)
	}

	c.Unset(0, 0)
	if got := c.Grid[0][0]; got != blank {
		t.Errorf("expected empty cell after unset, got %U", got)
	}
}

func TestCanvasScaledSurface(t *testing.T) {
	c := NewScaledCanvas(10, 5, 4)
	w, h := c.Viewport()
	if w != 80 || h != 80 {
		t.Fatalf("expected 80x80 viewport, got %vx%v", w, h)
	}

	c.Line(0, 0, 76, 0, 0.5, color.NRGBA{A: 100})
	for col := 0; col < 10; col++ {
		if r, a := c.Cell(0, col); r == blank || a == 0 {
			t.Errorf("line missing from cell %d", col)
		}
	}

	c.Circle(40, 40, 1, color.NRGBA{A: 255})
	if _, a := c.Cell(2, 5); a != 1 {
		t.Errorf("expected full alpha under circle, got %f", a)
	}

	c.Clear()
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Error("canvas not empty after clear")
	}
}

func TestCanvasKeepsStrongestAlpha(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Line(0, 0, 1, 0, 1, color.NRGBA{A: 200})
	c.Line(0, 0, 1, 0, 1, color.NRGBA{A: 50})
	if _, a := c.Cell(0, 0); a != 200.0/255 {
		t.Errorf("expected strongest alpha kept, got %f", a)
	}
}

func TestCanvasMinAlpha(t *testing.T) {
	c := NewCanvas(2, 2)
	c.MinAlpha = 0.1
	c.Line(0, 0, 3, 3, 1, color.NRGBA{A: 10})
	if r, _ := c.Cell(0, 0); r != blank {
		t.Error("faint line should be dropped")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewScaledCanvas(1, 1, 4)
	c.Resize(800, 600)
	if c.Width != 100 || c.Height != 38 {
		t.Errorf("expected 100x38 cells, got %dx%d", c.Width, c.Height)
	}
	if len(c.Alpha) != c.Height || len(c.Alpha[0]) != c.Width {
		t.Error("alpha grid not reallocated")
	}
}

func TestShaderLevels(t *testing.T) {
	s := NewShader(ThemeSlate, 0.4)
	if s.Level(0) != -1 {
		t.Error("zero alpha should not render")
	}
	if s.Level(0.4) != shadeLevels-1 || s.Level(0.9) != shadeLevels-1 {
		t.Error("alpha at ceiling should render at full tint")
	}
	if s.Level(0.01) != 0 {
		t.Errorf("faint alpha should map to the first level, got %d", s.Level(0.01))
	}
}

func TestShaderRenderRowWidth(t *testing.T) {
	c := NewCanvas(6, 1)
	c.Set(0, 0)
	c.Set(5, 0)
	s := NewShader(ThemeSlate, 1)

	if w := lipgloss.Width(s.RenderRow(c, 0, 0, 6)); w != 6 {
		t.Errorf("expected width 6, got %d", w)
	}
	if w := lipgloss.Width(s.RenderRow(c, 0, 4, 10)); w != 6 {
		t.Errorf("expected padded width 6, got %d", w)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "slate" {
		t.Error("unknown theme should fall back to slate")
	}
	if NextTheme("zinc").Name != Themes[0].Name {
		t.Error("NextTheme should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
	if NextTheme("nope").Name != Themes[0].Name {
		t.Error("unknown theme should cycle to the first")
	}

	seen := map[string]bool{}
	name := Themes[0].Name
	for range Themes {
		seen[name] = true
		if GetTheme(name).Background == GetTheme(name).Text {
			t.Errorf("%s: text matches background", name)
		}
		name = NextTheme(name).Name
	}
	if len(seen) != len(Themes) {
		t.Errorf("cycle visited %d of %d themes", len(seen), len(Themes))
	}
}

func TestGradientText(t *testing.T) {
	out := GradientText("DBMS", ThemeSlate.From, ThemeSlate.Via, ThemeSlate.To)
	if lipgloss.Width(out) != 4 {
		t.Errorf("expected visible width 4, got %d", lipgloss.Width(out))
	}
	if GradientText("") != "" {
		t.Error("empty text should render empty")
	}
}
