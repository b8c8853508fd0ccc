package tui

import (
	"log/slog"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dbmsviz/internal/background"
	"github.com/san-kum/dbmsviz/internal/config"
	"github.com/san-kum/dbmsviz/internal/field"
	"github.com/san-kum/dbmsviz/internal/frame"
	"github.com/san-kum/dbmsviz/internal/guide"
	"github.com/san-kum/dbmsviz/internal/viz"
)

type TickMsg time.Time

// stage is the background's host, surface and mounted component. Bubble Tea
// copies the model on every update; the stage pointer keeps one identity.
type stage struct {
	host   *frame.Manual
	canvas *viz.Canvas
	bg     *background.Background
	show   bool
}

// Model is the guide's Bubble Tea model.
type Model struct {
	cfg    *config.Config
	log    *slog.Logger
	rng    *rand.Rand
	theme  viz.Theme
	shader *viz.Shader

	width, height int
	start         time.Time
	stage         *stage

	router guide.Router
	levels guide.LevelSelector
	cards  *guide.Accordion
	roster *guide.Roster
	form   guide.Form
}

func NewModel(cfg *config.Config, log *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	theme := viz.GetTheme(cfg.Theme)
	canvas := viz.NewScaledCanvas(0, 0, cfg.PixelScale)
	canvas.MinAlpha = 0.01

	m := Model{
		cfg:    cfg,
		log:    log,
		rng:    newRand(cfg.Seed),
		theme:  theme,
		shader: viz.NewShader(theme, cfg.Field.NodeAlpha),
		start:  time.Now(),
		stage:  &stage{host: frame.NewManual(), canvas: canvas, show: cfg.Background},
		cards:  guide.NewAccordion(),
		roster: guide.NewRoster(),
	}
	m.router.Set(guide.ParseSection(cfg.Section))
	return m
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func (m Model) Init() tea.Cmd {
	return tick(m.cfg.FPS)
}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and drives the background frame host.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		m.stage.host.Advance(time.Time(msg).Sub(m.start))
		return m, tick(m.cfg.FPS)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) resize(cols, rows int) {
	m.width, m.height = cols, rows
	m.stage.host.SetViewport(viewport(cols, rows, m.cfg.PixelScale))
	if m.stage.show && !m.stage.bg.Mounted() {
		m.mountBackground()
	}
}

func (m *Model) mountBackground() {
	st := m.stage
	acquire := func() (field.Surface, bool) { return st.canvas, st.canvas != nil }
	st.bg = background.Mount(st.host, acquire, m.cfg.Field, m.rng, m.log)
}

func (m *Model) toggleBackground() {
	st := m.stage
	st.show = !st.show
	if st.show {
		m.mountBackground()
		return
	}
	st.bg.Teardown()
	st.canvas.Clear()
}

func (m Model) quit() (Model, tea.Cmd) {
	m.Teardown()
	return m, tea.Quit
}

// Teardown releases the background. Safe to call more than once.
func (m Model) Teardown() { m.stage.bg.Teardown() }

// Background exposes the mounted component, nil before the first size.
func (m Model) Background() *background.Background { return m.stage.bg }

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.form.Active() {
		return m.formKey(msg), nil
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "1":
		m.router.Set(guide.Architecture)
	case "2":
		m.router.Set(guide.SchemaInstance)
	case "3":
		m.router.Set(guide.Advantages)
	case "tab":
		m.router.Next()
	case "shift+tab":
		m.router.Prev()
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.shader = viz.NewShader(m.theme, m.cfg.Field.NodeAlpha)
	case "b":
		m.toggleBackground()
	default:
		m.sectionKey(msg)
	}
	return m, nil
}

func (m *Model) sectionKey(msg tea.KeyMsg) {
	switch m.router.Active() {
	case guide.Architecture:
		switch msg.String() {
		case "left", "h", "up", "k":
			m.levels.Prev()
		case "right", "l", "down", "j":
			m.levels.Next()
		}
	case guide.SchemaInstance:
		switch msg.String() {
		case "a", "enter", "i":
			m.form.Begin()
		}
	case guide.Advantages:
		switch msg.String() {
		case "up", "k":
			m.cards.Up()
		case "down", "j":
			m.cards.Down()
		case "enter", " ", "space":
			m.cards.ToggleCursor()
		}
	}
}

func (m Model) formKey(msg tea.KeyMsg) Model {
	f := &m.form
	switch msg.Type {
	case tea.KeyEsc:
		f.Cancel()
	case tea.KeyTab, tea.KeyDown:
		f.Next()
	case tea.KeyShiftTab, tea.KeyUp:
		f.Prev()
	case tea.KeyBackspace:
		f.Backspace()
	case tea.KeyEnter:
		s, err := f.Submit(m.roster)
		if err != nil {
			m.log.Debug("student rejected", "error", err)
			break
		}
		m.log.Info("student added", "id", s.ID)
	case tea.KeySpace:
		f.Type(" ")
	case tea.KeyRunes:
		f.Type(string(msg.Runes))
	}
	return m
}

// Run starts the full-screen guide and tears the background down on every
// exit path.
func Run(cfg *config.Config, log *slog.Logger) error {
	m := NewModel(cfg, log)
	defer m.Teardown()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
