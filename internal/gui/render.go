package gui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/dbmsviz/internal/guide"
)

const (
	pad      = 24
	maxWidth = 1100
	lineGap  = 6
)

func (a *App) drawText(text string, x, y float32, size float32, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(x, y), size, 1, color)
}

func (a *App) measure(text string, size float32) float32 {
	return rl.MeasureTextEx(a.font, text, size, 1).X
}

func (a *App) drawCentered(text string, cx, y, size float32, color rl.Color) {
	a.drawText(text, cx-a.measure(text, size)/2, y, size, color)
}

// wrap breaks text into lines no wider than width at the given size. The
// font is monospaced, so a cell count is exact.
func (a *App) wrap(text string, size, width float32) []string {
	cell := a.measure("M", size)
	if cell <= 0 {
		return []string{text}
	}
	limit := int(width / cell)
	if limit < 1 {
		limit = 1
	}
	return strings.Split(ansi.Wordwrap(text, limit, ""), "\n")
}

// drawParagraph draws wrapped text and returns the y below it.
func (a *App) drawParagraph(text string, x, y, width, size float32, color rl.Color) float32 {
	for _, line := range a.wrap(text, size, width) {
		a.drawText(line, x, y, size, color)
		y += size + lineGap
	}
	return y
}

func clicked(r rl.Rectangle) bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(rl.GetMousePosition(), r)
}

func drawPanel(r rl.Rectangle, border rl.Color) {
	rl.DrawRectangleRounded(r, 0.04, 8, ColPanel)
	rl.DrawRectangleLinesEx(r, 1, border)
}

// button draws a labelled box and reports whether it was clicked.
func (a *App) button(r rl.Rectangle, label string, active bool, accent rl.Color) bool {
	fill := rl.NewColor(31, 41, 55, 200)
	border := ColBorder
	text := ColTextDim
	if active {
		fill = rl.ColorAlpha(accent, 0.25)
		border = accent
		text = ColText
	} else if rl.CheckCollisionPointRec(rl.GetMousePosition(), r) {
		border = ColTextDim
	}
	rl.DrawRectangleRec(r, fill)
	rl.DrawRectangleLinesEx(r, 2, border)
	const size = 18
	a.drawCentered(label, r.X+r.Width/2, r.Y+(r.Height-size)/2, size, text)
	return clicked(r)
}

// drawCode draws a monospaced block and returns the y below it.
func (a *App) drawCode(code string, x, y, width float32) float32 {
	const size = 16
	lines := strings.Split(code, "\n")
	h := float32(len(lines))*(size+lineGap) + 2*12
	r := rl.NewRectangle(x, y, width, h)
	rl.DrawRectangleRec(r, ColCodeBg)
	rl.DrawRectangleLinesEx(r, 1, ColBorder)
	ly := y + 12
	for _, line := range lines {
		a.drawText(line, x+12, ly, size, ColCode)
		ly += size + lineGap
	}
	return y + h
}

func hexColor(s string) rl.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return ColAccent
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}

func (a *App) drawPage() {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	cw := min(w-2*40, maxWidth)
	x := (w - cw) / 2
	y := float32(32)

	a.drawCentered(guide.Title, w/2, y, 40, ColText)
	y += 48
	a.drawCentered(guide.Subtitle, w/2, y, 18, ColTextDim)
	y += 48

	y = a.drawNav(w/2, y)
	y += 24

	body := rl.NewRectangle(x, y, cw, h-y-72)
	drawPanel(body, ColBorder)
	inner := rl.NewRectangle(body.X+pad, body.Y+pad, body.Width-2*pad, body.Height-2*pad)

	switch a.router.Active() {
	case guide.Architecture:
		a.drawArchitecture(inner)
	case guide.SchemaInstance:
		a.drawSchema(inner)
	case guide.Advantages:
		a.drawAdvantages(inner)
	}

	a.drawCentered(a.hints(), w/2, h-56, 14, ColTextDim)
	a.drawCentered(guide.Footer, w/2, h-32, 14, ColTextDim)
}

func (a *App) hints() string {
	switch {
	case a.form.Active():
		return "TAB: NEXT FIELD  ENTER: ADD  ESC: CANCEL"
	case a.router.Active() == guide.Architecture:
		return "1-3/TAB: SECTION  ARROWS: LEVEL  B: BACKGROUND  Q: QUIT"
	case a.router.Active() == guide.SchemaInstance:
		return "1-3/TAB: SECTION  A: ADD STUDENT  B: BACKGROUND  Q: QUIT"
	}
	return "1-3/TAB: SECTION  ARROWS: MOVE  ENTER: EXPAND  B: BACKGROUND  Q: QUIT"
}

func (a *App) drawNav(cx, y float32) float32 {
	const bw, bh, gap = 220, 40, 12
	total := float32(len(guide.Sections))*bw + float32(len(guide.Sections)-1)*gap
	x := cx - total/2
	for _, s := range guide.Sections {
		r := rl.NewRectangle(x, y, bw, bh)
		if a.button(r, s.Label(), s == a.router.Active(), ColAccent) {
			a.router.Set(s)
		}
		x += bw + gap
	}
	return y + bh
}

func (a *App) drawArchitecture(r rl.Rectangle) {
	y := r.Y
	a.drawCentered("Three-Schema Architecture", r.X+r.Width/2, y, 28, ColText)
	y += 52

	const gap = 24
	bw := (r.Width - 2*gap) / 3
	active := a.levels.Active()
	for i, lv := range guide.SchemaLevels {
		br := rl.NewRectangle(r.X+float32(i)*(bw+gap), y, bw, 64)
		if a.button(br, lv.Title, lv.ID == active.ID, hexColor(lv.Color)) {
			a.levels.Select(lv.ID)
		}
		if i > 0 {
			mid := br.Y + br.Height/2
			rl.DrawLineEx(rl.NewVector2(br.X-gap+4, mid), rl.NewVector2(br.X-4, mid), 2, ColBorder)
		}
	}
	y += 64 + 32

	accent := hexColor(active.Color)
	a.drawText(active.Title, r.X, y, 26, accent)
	y += 34
	a.drawText(active.Subtitle, r.X, y, 16, ColTextDim)
	y += 32
	y = a.drawParagraph(active.Description, r.X, y, r.Width, 18, ColText)
	y += 20

	a.drawText(active.Example.Title, r.X, y, 20, ColText)
	y += 30
	y = a.drawParagraph(active.Example.Description, r.X, y, r.Width, 16, ColTextDim)
	y += 8
	a.drawCode(active.Example.Code, r.X, y, r.Width)
}

func (a *App) drawSchema(r rl.Rectangle) {
	const gap = 32
	col := (r.Width - gap) / 2
	a.drawSchemaColumn(rl.NewRectangle(r.X, r.Y, col, r.Height))
	a.drawInstanceColumn(rl.NewRectangle(r.X+col+gap, r.Y, col, r.Height))
}

func (a *App) drawSchemaColumn(r rl.Rectangle) {
	y := r.Y
	a.drawText(guide.SchemaHeading, r.X, y, 24, hexColor("#60a5fa"))
	y += 36
	y = a.drawParagraph(guide.SchemaDescription, r.X, y, r.Width, 16, ColTextDim)
	y += 12
	y = a.drawCode(guide.SchemaDDL, r.X, y, r.Width)
	y += 24

	a.drawText("Add New Instance", r.X, y, 20, ColText)
	y += 32
	for i := 0; i < guide.FormFields; i++ {
		in := rl.NewRectangle(r.X, y, r.Width, 36)
		focused := a.form.Focus() == i
		border := ColBorder
		if focused {
			border = ColAccent
		}
		rl.DrawRectangleRec(in, rl.NewColor(55, 65, 81, 255))
		rl.DrawRectangleLinesEx(in, 2, border)

		text, color := a.form.Values[i], ColText
		if focused {
			text += "_"
		} else if text == "" {
			text, color = guide.FormLabels[i], ColTextDim
		}
		a.drawText(text, in.X+10, in.Y+9, 18, color)
		if clicked(in) {
			a.form.FocusOn(i)
		}
		y += 44
	}

	if a.button(rl.NewRectangle(r.X, y, r.Width, 40), "Add Student", true, ColAccent) {
		if s, err := a.form.Submit(a.roster); err == nil {
			a.log.Info("student added", "id", s.ID)
		}
	}
	y += 52
	if msg := guide.Message(a.form.Err); msg != "" {
		a.drawText(msg, r.X, y, 16, ColError)
	} else if a.form.Notice != "" {
		a.drawText(a.form.Notice, r.X, y, 16, ColCode)
	}
}

func (a *App) drawInstanceColumn(r rl.Rectangle) {
	y := r.Y
	a.drawText(guide.InstanceHeading, r.X, y, 24, hexColor("#4ade80"))
	y += 36
	y = a.drawParagraph(guide.InstanceDescription, r.X, y, r.Width, 16, ColTextDim)
	y += 16

	cols := [3]float32{r.X + 12, r.X + 92, r.X + 92 + (r.Width-92)/2}
	const rowH = 36
	rl.DrawRectangleRec(rl.NewRectangle(r.X, y, r.Width, rowH), rl.NewColor(55, 65, 81, 255))
	for i, head := range [3]string{"ID", "NAME", "MAJOR"} {
		a.drawText(head, cols[i], y+10, 16, ColTextDim)
	}
	y += rowH

	for _, s := range a.roster.Students() {
		if rl.CheckCollisionPointRec(rl.GetMousePosition(), rl.NewRectangle(r.X, y, r.Width, rowH)) {
			rl.DrawRectangleRec(rl.NewRectangle(r.X, y, r.Width, rowH), rl.NewColor(55, 65, 81, 128))
		}
		a.drawText(fmt.Sprint(s.ID), cols[0], y+10, 16, ColText)
		a.drawText(s.Name, cols[1], y+10, 16, ColText)
		a.drawText(s.Major, cols[2], y+10, 16, ColText)
		rl.DrawLineEx(rl.NewVector2(r.X, y+rowH), rl.NewVector2(r.X+r.Width, y+rowH), 1, ColBorder)
		y += rowH
	}
}

func (a *App) drawAdvantages(r rl.Rectangle) {
	y := r.Y
	a.drawCentered(guide.AdvantagesHeading, r.X+r.Width/2, y, 28, ColText)
	y += 40
	a.drawCentered(guide.AdvantagesIntro, r.X+r.Width/2, y, 16, ColTextDim)
	y += 40

	const headH, descSize = 48, 16
	for i, adv := range guide.AdvantageList {
		lines := a.wrap(adv.Description, descSize, r.Width-48)
		full := float32(len(lines))*(descSize+lineGap) + 16
		open := a.motion.Openness(adv.ID)
		card := rl.NewRectangle(r.X, y, r.Width, headH+full*open)

		border := ColBorder
		if i == a.cards.Cursor() {
			border = ColAccent
		}
		rl.DrawRectangleRec(card, rl.NewColor(31, 41, 55, 220))
		rl.DrawRectangleLinesEx(card, 1, border)

		marker := "+"
		if a.cards.IsExpanded(adv.ID) {
			marker = "-"
		}
		a.drawText(marker+"  "+adv.Title, card.X+24, card.Y+14, 20, ColText)

		if open > 0 {
			rl.BeginScissorMode(int32(card.X), int32(card.Y+headH), int32(card.Width), int32(full*open))
			ly := card.Y + headH
			for _, line := range lines {
				a.drawText(line, card.X+24, ly, descSize, ColTextDim)
				ly += descSize + lineGap
			}
			rl.EndScissorMode()
		}

		if clicked(rl.NewRectangle(card.X, card.Y, card.Width, headH)) {
			a.cards.Toggle(adv.ID)
			a.motion.Sync(a.cards)
		}
		y += card.Height + 10
	}
}
