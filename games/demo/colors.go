package demo

import (
	"time"

	"tivagc/engine"
	"tivagc/input"
	"tivagc/lcd"
)

const colorsInterval = 250 * time.Millisecond

// Colors steps the background through the palette four times a second,
// redrawing a caption and a large glyph on each step.
type Colors struct {
	idx   int
	first bool
	exit  input.Hold
}

func (c *Colors) Start(ctx *engine.Context) {
	*c = Colors{first: true, exit: exitHold()}
	ctx.SetUpdate(c.Update)
}

func (c *Colors) Update(ctx *engine.Context) bool {
	d := ctx.LCD()
	if wantsExit(ctx, &c.exit) {
		d.SetBackground(lcd.Black)
		return false
	}
	if !c.first && !ctx.Elapsed(colorsInterval) {
		return true
	}
	if c.first {
		ctx.PopTicks()
		c.first = false
	}

	bg := lcd.Palette[c.idx]
	d.SetBackground(bg)
	d.DrawString(0, 0, "Inside menu loop", 0, lcd.Green)
	d.DrawChar(0, 8, byte(c.idx), lcd.Magenta, bg, 2)
	c.idx = (c.idx + 1) % len(lcd.Palette)
	return true
}
