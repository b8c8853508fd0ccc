package background_test

import (
	"image/color"
	"math/rand/v2"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dbmsviz/internal/background"
	"github.com/san-kum/dbmsviz/internal/field"
	"github.com/san-kum/dbmsviz/internal/frame"
)

type countingSurface struct {
	clears, lines, circles int
	w, h                   float64
}

func (s *countingSurface) Clear()                                    { s.clears++ }
func (s *countingSurface) Line(_, _, _, _, _ float64, _ color.NRGBA) { s.lines++ }
func (s *countingSurface) Circle(_, _, _ float64, _ color.NRGBA)     { s.circles++ }
func (s *countingSurface) Resize(w, h float64)                       { s.w, s.h = w, h }

var _ = Describe("Background", func() {
	var (
		host    *frame.Manual
		surface *countingSurface
		acquire background.Acquire
		rng     *rand.Rand
	)

	BeforeEach(func() {
		host = frame.NewManual()
		host.SetViewport(800, 600)
		surface = &countingSurface{}
		acquire = func() (field.Surface, bool) { return surface, true }
		rng = rand.New(rand.NewPCG(7, 11))
	})

	Context("when mounted", func() {
		var bg *background.Background

		BeforeEach(func() {
			bg = background.Mount(host, acquire, field.DefaultParams(), rng, nil)
		})

		AfterEach(func() {
			bg.Teardown()
		})

		It("sizes the population to the viewport area", func() {
			Expect(bg.Mounted()).To(BeTrue())
			Expect(bg.Field().Len()).To(Equal(32))
			Expect(surface.w).To(Equal(800.0))
			Expect(surface.h).To(Equal(600.0))
		})

		It("draws the first frame immediately and schedules the next", func() {
			Expect(surface.clears).To(Equal(1))
			Expect(surface.circles).To(Equal(32))
			Expect(host.Pending()).To(Equal(1))
		})

		It("draws once per advanced frame", func() {
			for i := 1; i <= 5; i++ {
				host.Advance(time.Duration(i) * 16 * time.Millisecond)
			}
			Expect(bg.Frames()).To(Equal(6))
			Expect(surface.clears).To(Equal(6))
			Expect(bg.Elapsed()).To(Equal(80 * time.Millisecond))
		})

		It("reseeds on resize", func() {
			host.SetViewport(1200, 900)
			Expect(bg.Field().Len()).To(Equal(72))
			w, h := bg.Field().Bounds()
			Expect(w).To(Equal(1200.0))
			Expect(h).To(Equal(900.0))
			Expect(surface.w).To(Equal(1200.0))
		})

		It("yields the same count when resized twice to the same size", func() {
			host.SetViewport(1000, 500)
			once := bg.Field().Len()
			host.SetViewport(1000, 500)
			Expect(bg.Field().Len()).To(Equal(once))
		})

		It("ignores malformed resize measurements", func() {
			host.SetViewport(0, 600)
			Expect(bg.Field().Len()).To(Equal(32))
			w, _ := bg.Field().Bounds()
			Expect(w).To(Equal(800.0))
		})

		It("keeps every node inside the viewport while animating", func() {
			for i := 1; i <= 600; i++ {
				host.Advance(time.Duration(i) * 16 * time.Millisecond)
			}
			for _, n := range bg.Field().Nodes() {
				Expect(n.Pos.X).To(BeNumerically(">=", 0))
				Expect(n.Pos.X).To(BeNumerically("<=", 800))
				Expect(n.Pos.Y).To(BeNumerically(">=", 0))
				Expect(n.Pos.Y).To(BeNumerically("<=", 600))
			}
		})
	})

	Context("after teardown", func() {
		It("stops scheduling and drawing", func() {
			bg := background.Mount(host, acquire, field.DefaultParams(), rng, nil)
			host.Advance(16 * time.Millisecond)
			drawn := surface.clears

			bg.Teardown()
			Expect(bg.Mounted()).To(BeFalse())
			Expect(host.Pending()).To(Equal(0))
			Expect(host.Listeners()).To(Equal(0))

			Expect(host.Advance(32 * time.Millisecond)).To(Equal(0))
			host.SetViewport(400, 300)
			Expect(surface.clears).To(Equal(drawn))
			Expect(bg.Field().Len()).To(Equal(32))
		})

		It("tolerates repeated teardown", func() {
			bg := background.Mount(host, acquire, field.DefaultParams(), rng, nil)
			bg.Teardown()
			Expect(bg.Teardown).NotTo(Panic())
		})
	})

	Context("when the surface is unavailable", func() {
		It("silently does nothing", func() {
			none := func() (field.Surface, bool) { return nil, false }
			bg := background.Mount(host, none, field.DefaultParams(), rng, nil)

			Expect(bg.Mounted()).To(BeFalse())
			Expect(host.Pending()).To(Equal(0))
			Expect(host.Listeners()).To(Equal(0))
			Expect(bg.Teardown).NotTo(Panic())
		})
	})

	Context("when the viewport has not been measured", func() {
		It("silently does nothing", func() {
			bg := background.Mount(frame.NewManual(), acquire, field.DefaultParams(), rng, nil)
			Expect(bg.Mounted()).To(BeFalse())
			Expect(surface.clears).To(BeZero())
		})
	})

	Context("when the viewport is degenerate", func() {
		It("silently does nothing", func() {
			tiny := frame.NewManual()
			tiny.SetViewport(-5, 100)
			bg := background.Mount(tiny, acquire, field.DefaultParams(), rng, nil)
			Expect(bg.Mounted()).To(BeFalse())
			Expect(tiny.Pending()).To(BeZero())
		})
	})
})
