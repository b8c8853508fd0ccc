package gui

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/dbmsviz/internal/background"
	"github.com/san-kum/dbmsviz/internal/config"
	"github.com/san-kum/dbmsviz/internal/field"
	"github.com/san-kum/dbmsviz/internal/frame"
	"github.com/san-kum/dbmsviz/internal/guide"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(17, 24, 39, 255)    // Gray 900
	ColPanel   = rl.NewColor(31, 41, 55, 128)    // Gray 800 at half
	ColBorder  = rl.NewColor(55, 65, 81, 255)    // Gray 700
	ColText    = rl.NewColor(243, 244, 246, 255) // Gray 100
	ColTextDim = rl.NewColor(156, 163, 175, 255) // Gray 400
	ColAccent  = rl.NewColor(37, 99, 235, 255)   // Blue 600
	ColCode    = rl.NewColor(74, 222, 128, 255)  // Green 400
	ColError   = rl.NewColor(248, 113, 113, 255)
	ColCodeBg  = rl.NewColor(3, 7, 18, 200)
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

type App struct {
	cfg  *config.Config
	log  *slog.Logger
	rng  *rand.Rand
	font rl.Font

	host  *frame.Manual
	bg    *background.Background
	start time.Time

	router guide.Router
	levels guide.LevelSelector
	cards  *guide.Accordion
	motion *cardMotion
	roster *guide.Roster
	form   guide.Form
	show   bool
	quit   bool
}

// initWindow opens a resizable window sized from cfg.
func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), guide.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when installed and falls back to the raylib
// default font.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, log *slog.Logger) *App {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	cards := guide.NewAccordion()
	a := &App{
		cfg:    cfg,
		log:    log,
		rng:    rng,
		font:   loadFont(),
		host:   frame.NewManual(),
		start:  time.Now(),
		cards:  cards,
		motion: newCardMotion(cards),
		roster: guide.NewRoster(),
		show:   cfg.Background,
	}
	a.router.Set(guide.ParseSection(cfg.Section))
	a.host.SetViewport(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	if a.show {
		a.mountBackground()
	}
	return a
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *slog.Logger) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	initWindow(cfg)
	defer rl.CloseWindow()

	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: window could not be created")
	}

	app := NewApp(cfg, log)
	defer app.Teardown()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) mountBackground() {
	acquire := func() (field.Surface, bool) { return surface{bg: ColBg}, rl.IsWindowReady() }
	a.bg = background.Mount(a.host, acquire, a.cfg.Field, a.rng, a.log)
}

// Teardown releases the background. Safe to call more than once.
func (a *App) Teardown() {
	a.bg.Teardown()
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.host.SetViewport(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}
	a.motion.Update(rl.GetFrameTime())

	if a.form.Active() {
		a.updateForm()
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeyOne):
		a.router.Set(guide.Architecture)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.router.Set(guide.SchemaInstance)
	case rl.IsKeyPressed(rl.KeyThree):
		a.router.Set(guide.Advantages)
	case rl.IsKeyPressed(rl.KeyTab):
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			a.router.Prev()
		} else {
			a.router.Next()
		}
	case rl.IsKeyPressed(rl.KeyB):
		a.toggleBackground()
	default:
		a.updateSection()
	}
}

func (a *App) toggleBackground() {
	a.show = !a.show
	if a.show {
		a.mountBackground()
		return
	}
	a.bg.Teardown()
}

func (a *App) updateSection() {
	switch a.router.Active() {
	case guide.Architecture:
		if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
			a.levels.Next()
		}
		if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
			a.levels.Prev()
		}
	case guide.SchemaInstance:
		if rl.IsKeyPressed(rl.KeyA) || rl.IsKeyPressed(rl.KeyEnter) {
			a.form.Begin()
		}
	case guide.Advantages:
		if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
			a.cards.Down()
		}
		if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
			a.cards.Up()
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
			a.cards.ToggleCursor()
			a.motion.Sync(a.cards)
		}
	}
}

func (a *App) updateForm() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		a.form.Type(string(rune(r)))
	}
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		a.form.Cancel()
	case rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace):
		a.form.Backspace()
	case rl.IsKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyDown):
		a.form.Next()
	case rl.IsKeyPressed(rl.KeyUp):
		a.form.Prev()
	case rl.IsKeyPressed(rl.KeyEnter):
		s, err := a.form.Submit(a.roster)
		if err != nil {
			a.log.Debug("student rejected", "error", err)
			return
		}
		a.log.Info("student added", "id", s.ID)
	}
}

// Draw renders one window frame. The background draws itself when the frame
// host fires, so Advance has to run inside BeginDrawing.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.host.Advance(time.Since(a.start))
	a.drawPage()

	rl.EndDrawing()
}
