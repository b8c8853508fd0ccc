package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a Tailwind-derived palette for the terminal views.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	// Gradient stops for headings.
	From, Via, To lipgloss.Color
}

var (
	ThemeSlate = Theme{
		Name:       "slate",
		Primary:    lipgloss.Color("#2563eb"), // Blue 600
		Secondary:  lipgloss.Color("#60a5fa"),
		Accent:     lipgloss.Color("#c084fc"),
		Background: lipgloss.Color("#111827"), // Gray 900
		Text:       lipgloss.Color("#f3f4f6"),
		Muted:      lipgloss.Color("#9ca3af"),
		Success:    lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#facc15"),
		Error:      lipgloss.Color("#f87171"),
		From:       lipgloss.Color("#60a5fa"),
		Via:        lipgloss.Color("#a855f7"),
		To:         lipgloss.Color("#4ade80"),
	}

	ThemeIndigo = Theme{
		Name:       "indigo",
		Primary:    lipgloss.Color("#4f46e5"), // Indigo 600
		Secondary:  lipgloss.Color("#818cf8"),
		Accent:     lipgloss.Color("#f472b6"),
		Background: lipgloss.Color("#1e1b4b"), // Indigo 950
		Text:       lipgloss.Color("#e0e7ff"),
		Muted:      lipgloss.Color("#a5b4fc"),
		Success:    lipgloss.Color("#34d399"),
		Warning:    lipgloss.Color("#fbbf24"),
		Error:      lipgloss.Color("#fb7185"),
		From:       lipgloss.Color("#818cf8"),
		Via:        lipgloss.Color("#c084fc"),
		To:         lipgloss.Color("#f472b6"),
	}

	ThemeEmerald = Theme{
		Name:       "emerald",
		Primary:    lipgloss.Color("#059669"), // Emerald 600
		Secondary:  lipgloss.Color("#2dd4bf"),
		Accent:     lipgloss.Color("#38bdf8"),
		Background: lipgloss.Color("#022c22"), // Emerald 950
		Text:       lipgloss.Color("#ecfdf5"),
		Muted:      lipgloss.Color("#6ee7b7"),
		Success:    lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#facc15"),
		Error:      lipgloss.Color("#f87171"),
		From:       lipgloss.Color("#38bdf8"),
		Via:        lipgloss.Color("#2dd4bf"),
		To:         lipgloss.Color("#a3e635"),
	}

	// Zinc drops the accent hues for low-colour terminals.
	ThemeZinc = Theme{
		Name:       "zinc",
		Primary:    lipgloss.Color("#52525b"),
		Secondary:  lipgloss.Color("#a1a1aa"),
		Accent:     lipgloss.Color("#e4e4e7"),
		Background: lipgloss.Color("#18181b"), // Zinc 900
		Text:       lipgloss.Color("#fafafa"),
		Muted:      lipgloss.Color("#71717a"),
		Success:    lipgloss.Color("#d4d4d8"),
		Warning:    lipgloss.Color("#d4d4d8"),
		Error:      lipgloss.Color("#fafafa"),
		From:       lipgloss.Color("#fafafa"),
		Via:        lipgloss.Color("#a1a1aa"),
		To:         lipgloss.Color("#71717a"),
	}

	// Themes in the order the TUI cycles through them.
	Themes = []Theme{ThemeSlate, ThemeIndigo, ThemeEmerald, ThemeZinc}
)

func themeIndex(name string) int {
	for i := range Themes {
		if Themes[i].Name == name {
			return i
		}
	}
	return -1
}

// GetTheme looks a theme up by name; unknown names get slate.
func GetTheme(name string) Theme {
	if i := themeIndex(name); i >= 0 {
		return Themes[i]
	}
	return ThemeSlate
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	return Themes[(themeIndex(name)+1)%len(Themes)]
}

func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for _, t := range Themes {
		names = append(names, t.Name)
	}
	return names
}
