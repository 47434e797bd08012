package demo

import (
	"time"

	"tivagc/engine"
	"tivagc/fonts/font5x8"
	"tivagc/input"
	"tivagc/lcd"
)

// Text fills the panel with every byte value in turn. SW1 pauses, SW2
// shows a greeting and restarts, SEL changes the colour.
type Text struct {
	x, y    int
	ch      byte
	color   int
	enabled bool
	exit    input.Hold
}

const textInterval = 16 * time.Millisecond

func (t *Text) Start(ctx *engine.Context) {
	*t = Text{enabled: true, exit: exitHold()}
	ctx.LCD().SetBackground(lcd.Black)
	ctx.LCD().Clear()
	ctx.PopTicks()
	ctx.SetUpdate(t.Update)
}

func (t *Text) Update(ctx *engine.Context) bool {
	if wantsExit(ctx, &t.exit) {
		return false
	}
	d := ctx.LCD()

	if ctx.SW1().Pressed {
		t.enabled = !t.enabled
	}
	if ctx.SW2().Pressed {
		d.Clear()
		d.DrawString(3, 4, "Hello! :)", 0, lcd.Palette[t.color])
		ctx.Delay(time.Second)
		d.Clear()
		t.x, t.y, t.ch = 0, 0, 0
	}
	if ctx.Select().Pressed {
		t.color = (t.color + 1) % len(lcd.Palette)
	}

	if !t.enabled || !ctx.Elapsed(textInterval) {
		return true
	}

	w, h := d.Size()
	t.ch++
	if t.x+2*font5x8.CellWidth >= w {
		t.x = 0
		t.y += font5x8.CellHeight
	} else {
		t.x += font5x8.CellWidth
	}
	if t.y+font5x8.CellHeight > h {
		t.y = 0
	}
	d.DrawChar(t.x, t.y, t.ch, lcd.Palette[t.color], lcd.Black, 1)
	return true
}
