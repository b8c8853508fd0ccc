package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/dbmsviz/internal/guide"
	"github.com/san-kum/dbmsviz/internal/viz"
)

const (
	maxBlockWidth = 100
	twoColumnMin  = 90
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	w := blockWidth(m.width)
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.header(w),
		"",
		m.navbar(w),
		"",
		m.panel(w),
		"",
		m.footer(w),
	)
	return m.compose(strings.Split(content, "\n"), w)
}

func blockWidth(cols int) int {
	w := cols - 4
	if w > maxBlockWidth {
		w = maxBlockWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) header(w int) string {
	title := viz.GradientText(guide.Title, m.theme.From, m.theme.Via, m.theme.To)
	sub := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(guide.Subtitle)
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)
	return center.Render(title) + "\n" + center.Render(sub)
}

func (m Model) navbar(w int) string {
	active, idle := viz.NavStyles(m.theme)
	tabs := make([]string, 0, len(guide.Sections))
	for i, s := range guide.Sections {
		label := fmt.Sprintf("%d %s", i+1, s.Label())
		if s == m.router.Active() {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, idle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(bar)
}

func (m Model) panel(w int) string {
	var body string
	switch m.router.Active() {
	case guide.Architecture:
		body = m.architecture(w - 6)
	case guide.SchemaInstance:
		body = m.schema(w - 6)
	case guide.Advantages:
		body = m.advantages(w - 6)
	}
	return viz.GlassPanel.Width(w - 2).Render(body)
}

func (m Model) heading(text string) string {
	return viz.GradientText(text, m.theme.From, m.theme.To)
}

func (m Model) architecture(w int) string {
	var b strings.Builder
	b.WriteString(m.heading("Three-Schema Architecture") + "\n\n")

	active := m.levels.Active()
	buttons := make([]string, 0, len(guide.SchemaLevels)*2)
	for i, lv := range guide.SchemaLevels {
		style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
		if lv.ID == active.ID {
			style = style.BorderForeground(lipgloss.Color(lv.Color)).Bold(true)
		} else {
			style = style.BorderForeground(lipgloss.Color("#374151")).Foreground(m.theme.Muted)
		}
		buttons = append(buttons, style.Render(lv.Icon+" "+lv.Title))
		if i < len(guide.SchemaLevels)-1 {
			buttons = append(buttons, viz.Subtle.Render("\n──\n"))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	if lipgloss.Width(row) > w {
		row = lipgloss.JoinVertical(lipgloss.Left, everyOther(buttons)...)
	}
	b.WriteString(row + "\n\n")

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(active.Color)).Bold(true)
	text := lipgloss.NewStyle().Foreground(m.theme.Text).Width(w)
	b.WriteString(accent.Render(active.Icon+"  "+active.Title) + "\n")
	b.WriteString(viz.Subtle.Render(active.Subtitle) + "\n\n")
	b.WriteString(text.Render(active.Description) + "\n\n")

	ex := active.Example
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(ex.Title) + "\n")
	b.WriteString(viz.Subtle.Width(w).Render(ex.Description) + "\n")
	b.WriteString(viz.CodeBlock.Render(ex.Code))
	return b.String()
}

func everyOther(items []string) []string {
	out := make([]string, 0, (len(items)+1)/2)
	for i := 0; i < len(items); i += 2 {
		out = append(out, items[i])
	}
	return out
}

func (m Model) schema(w int) string {
	col := w
	if w >= twoColumnMin {
		col = (w - 3) / 2
	}
	text := viz.Subtle.Width(col)

	var left strings.Builder
	left.WriteString(m.heading(guide.SchemaHeading) + "\n")
	left.WriteString(text.Render(guide.SchemaDescription) + "\n\n")
	left.WriteString(viz.CodeBlock.Render(guide.SchemaDDL) + "\n\n")
	left.WriteString(lipgloss.NewStyle().Bold(true).Render("Add New Instance") + "\n")
	left.WriteString(m.formView(col))

	var right strings.Builder
	right.WriteString(m.heading(guide.InstanceHeading) + "\n")
	right.WriteString(text.Render(guide.InstanceDescription) + "\n\n")
	right.WriteString(m.studentTable())

	if w >= twoColumnMin {
		return lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "   ", right.String())
	}
	return left.String() + "\n\n" + right.String()
}

func (m Model) formView(w int) string {
	input := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4b5563")).
		Width(w - 2)
	focused := input.BorderForeground(m.theme.Primary)
	placeholder := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	var b strings.Builder
	for i := 0; i < guide.FormFields; i++ {
		v := m.form.Values[i]
		style := input
		if m.form.Focus() == i {
			style = focused
			v += "█"
		} else if v == "" {
			v = placeholder.Render(guide.FormLabels[i])
		}
		b.WriteString(style.Render(v) + "\n")
	}
	if msg := guide.Message(m.form.Err); msg != "" {
		b.WriteString(viz.ErrorText.Render(msg) + "\n")
	}
	if m.form.Notice != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Success).Render(m.form.Notice) + "\n")
	}
	if !m.form.Active() {
		b.WriteString(viz.KeyHint.Render("a: add student"))
	} else {
		b.WriteString(viz.KeyHint.Render("tab: next field  enter: add student  esc: cancel"))
	}
	return b.String()
}

func (m Model) studentTable() string {
	rows := make([][]string, 0, m.roster.Len())
	for _, s := range m.roster.Students() {
		rows = append(rows, []string{fmt.Sprint(s.ID), s.Name, s.Major})
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(m.theme.Muted).Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))).
		Headers("ID", "Name", "Major").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Render()
}

func (m Model) advantages(w int) string {
	var b strings.Builder
	b.WriteString(m.heading(guide.AdvantagesHeading) + "\n")
	b.WriteString(viz.Subtle.Render(guide.AdvantagesIntro) + "\n\n")

	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text)
	selected := title.Foreground(m.theme.Secondary)
	desc := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(w - 4).PaddingLeft(4)

	for i, a := range guide.AdvantageList {
		marker := "▸"
		if m.cards.IsExpanded(a.ID) {
			marker = "▾"
		}
		style := title
		cursor := "  "
		if i == m.cards.Cursor() {
			style = selected
			cursor = "› "
		}
		b.WriteString(cursor + style.Render(marker+" "+a.Icon+"  "+a.Title) + "\n")
		if m.cards.IsExpanded(a.ID) {
			b.WriteString(desc.Render(a.Description) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) footer(w int) string {
	hints := "1-3/tab: section  t: theme  b: background  q: quit"
	switch m.router.Active() {
	case guide.Architecture:
		hints = "←/→: schema level  " + hints
	case guide.Advantages:
		hints = "↑/↓: move  enter: expand  " + hints
	}
	return viz.KeyHint.Width(w).Align(lipgloss.Center).Render(hints) + "\n" +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Width(w).Align(lipgloss.Center).Render(guide.Footer)
}
