package gui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/san-kum/dbmsviz/internal/guide"
)

const cardDuration = 0.3

// cardMotion eases every advantage card between collapsed (0) and open (1)
// following an accordion. Call Sync after the accordion changes and Update
// once per frame.
type cardMotion struct {
	open   map[int]float32
	target map[int]float32
	tweens map[int]*gween.Tween
}

func newCardMotion(acc *guide.Accordion) *cardMotion {
	c := &cardMotion{
		open:   make(map[int]float32, len(guide.AdvantageList)),
		target: make(map[int]float32, len(guide.AdvantageList)),
		tweens: make(map[int]*gween.Tween),
	}
	for _, a := range guide.AdvantageList {
		if acc.IsExpanded(a.ID) {
			c.open[a.ID], c.target[a.ID] = 1, 1
		}
	}
	return c
}

func (c *cardMotion) Sync(acc *guide.Accordion) {
	for _, a := range guide.AdvantageList {
		var want float32
		if acc.IsExpanded(a.ID) {
			want = 1
		}
		if c.target[a.ID] == want {
			continue
		}
		c.target[a.ID] = want
		c.tweens[a.ID] = gween.New(c.open[a.ID], want, cardDuration, ease.OutCubic)
	}
}

// Update advances running tweens by dt seconds.
func (c *cardMotion) Update(dt float32) {
	for id, tw := range c.tweens {
		v, done := tw.Update(dt)
		c.open[id] = v
		if done {
			delete(c.tweens, id)
		}
	}
}

func (c *cardMotion) Openness(id int) float32 { return c.open[id] }

func (c *cardMotion) Settled() bool { return len(c.tweens) == 0 }
