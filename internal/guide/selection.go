package guide

// LevelSelector tracks the schema level shown in the architecture panel.
// The zero value selects the external schema.
type LevelSelector struct {
	index int
}

func (l *LevelSelector) Active() SchemaLevel { return SchemaLevels[l.index] }
func (l *LevelSelector) Index() int          { return l.index }

// Select picks a level by id and reports whether it exists.
func (l *LevelSelector) Select(id string) bool {
	for i, lv := range SchemaLevels {
		if lv.ID == id {
			l.index = i
			return true
		}
	}
	return false
}

func (l *LevelSelector) Next() {
	if l.index < len(SchemaLevels)-1 {
		l.index++
	}
}

func (l *LevelSelector) Prev() {
	if l.index > 0 {
		l.index--
	}
}

// Accordion tracks the single expanded advantage card and a cursor for
// keyboard navigation.
type Accordion struct {
	expanded int
	cursor   int
}

// NewAccordion opens with the first card expanded.
func NewAccordion() *Accordion {
	return &Accordion{expanded: AdvantageList[0].ID}
}

// Toggle expands id, or collapses it if it is already the expanded card.
func (a *Accordion) Toggle(id int) {
	if a.expanded == id {
		a.expanded = 0
		return
	}
	a.expanded = id
}

// Expanded returns the expanded card id and whether any card is open.
func (a *Accordion) Expanded() (int, bool) { return a.expanded, a.expanded != 0 }

func (a *Accordion) IsExpanded(id int) bool { return a.expanded != 0 && a.expanded == id }

func (a *Accordion) Cursor() int { return a.cursor }

func (a *Accordion) Up() {
	if a.cursor > 0 {
		a.cursor--
	}
}

func (a *Accordion) Down() {
	if a.cursor < len(AdvantageList)-1 {
		a.cursor++
	}
}

// ToggleCursor toggles the card under the cursor.
func (a *Accordion) ToggleCursor() { a.Toggle(AdvantageList[a.cursor].ID) }
