package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/san-kum/dbmsviz/internal/background"
	"github.com/san-kum/dbmsviz/internal/config"
	"github.com/san-kum/dbmsviz/internal/field"
	"github.com/san-kum/dbmsviz/internal/frame"
	"github.com/san-kum/dbmsviz/internal/viz"
)

const (
	home        = "\033[H"
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var ErrNoBackground = errors.New("tui: background could not mount")

// viewport converts a terminal size into field pixels.
func viewport(cols, rows int, scale float64) (w, h float64) {
	return float64(cols) * 2 * scale, float64(rows) * 4 * scale
}

// LiveRenderer paints the background field straight to a terminal, one frame
// per host frame, without the guide on top.
type LiveRenderer struct {
	out    io.Writer
	host   frame.Host
	cfg    *config.Config
	log    *slog.Logger
	canvas *viz.Canvas
	shader *viz.Shader
	bg     *background.Background
	handle frame.Handle
	frames int
}

func NewLiveRenderer(out io.Writer, host frame.Host, cfg *config.Config, log *slog.Logger) *LiveRenderer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	canvas := viz.NewScaledCanvas(0, 0, cfg.PixelScale)
	canvas.MinAlpha = 0.01
	return &LiveRenderer{
		out:    out,
		host:   host,
		cfg:    cfg,
		log:    log,
		canvas: canvas,
		shader: viz.NewShader(viz.GetTheme(cfg.Theme), cfg.Field.NodeAlpha),
	}
}

// Start mounts the background and schedules painting. It reports false when
// the background could not mount.
func (r *LiveRenderer) Start() bool {
	acquire := func() (field.Surface, bool) { return r.canvas, true }
	bg := background.Mount(r.host, acquire, r.cfg.Field, newRand(r.cfg.Seed), r.log)
	if !bg.Mounted() {
		return false
	}
	r.bg = bg
	fmt.Fprint(r.out, hideCursor+clearScreen)
	r.handle = r.host.RequestFrame(r.paint)
	return true
}

// paint runs in the same frame batch as the background, after it has drawn.
func (r *LiveRenderer) paint(now time.Duration) {
	r.frames++
	var b strings.Builder
	b.WriteString(home)
	b.WriteString(r.shader.Render(r.canvas))
	b.WriteString("\n")
	b.WriteString(r.status(now))
	fmt.Fprint(r.out, b.String())
	r.handle = r.host.RequestFrame(r.paint)
}

func (r *LiveRenderer) status(now time.Duration) string {
	st := r.bg.Field().Stats(now)
	line := fmt.Sprintf(" nodes=%d  edges=%d  frame=%d  t=%.1fs  ctrl+c to quit",
		st.Nodes, st.Edges, r.frames, now.Seconds())
	if pad := r.canvas.Width - len(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return viz.KeyHint.Render(line)
}

// Frames is the number of frames painted so far.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) Canvas() *viz.Canvas { return r.canvas }

// Stop cancels painting, tears the background down and restores the cursor.
func (r *LiveRenderer) Stop() {
	if r.bg == nil {
		return
	}
	r.host.CancelFrame(r.handle)
	r.bg.Teardown()
	r.bg = nil
	fmt.Fprint(r.out, showCursor+"\n")
}

// Watch animates the background in the current terminal until ctx is done.
// Window size changes reseed the field.
func Watch(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	loop, err := frame.NewLoop(cfg.FPS)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	size := func() (float64, float64, error) {
		cols, rows, err := term.GetSize(fd)
		if err != nil {
			return 0, 0, fmt.Errorf("watch: terminal size: %w", err)
		}
		// Last row holds the status line.
		w, h := viewport(cols, rows-1, cfg.PixelScale)
		return w, h, nil
	}

	w, h, err := size()
	if err != nil {
		return err
	}
	loop.Resize(w, h)

	r := NewLiveRenderer(os.Stdout, loop, cfg, log)
	if !r.Start() {
		return ErrNoBackground
	}
	defer r.Stop()

	winch := make(chan os.Signal, 1)
	if len(resizeSignals) > 0 {
		signal.Notify(winch, resizeSignals...)
		defer signal.Stop(winch)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-winch:
				w, h, err := size()
				if err != nil {
					log.Warn("resize ignored", "error", err)
					continue
				}
				loop.Resize(w, h)
			}
		}
	}()

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
