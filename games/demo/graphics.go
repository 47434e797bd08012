package demo

import (
	"image"

	"tivagc/engine"
	"tivagc/hal"
	"tivagc/input"
	"tivagc/lcd"
)

var graphicsColors = [...]lcd.Color{lcd.Red, lcd.Yellow, lcd.Green, lcd.Cyan, lcd.Blue, lcd.Magenta}

const cursorRadius = 6

// Graphics draws a line from the panel centre to a circle that follows
// the joystick. SW1 and SW2 step through the colours, SEL toggles
// inversion.
type Graphics struct {
	pos     image.Point
	color   int
	invert  bool
	exit    input.Hold
	pending bool
}

func (g *Graphics) Start(ctx *engine.Context) {
	*g = Graphics{exit: exitHold(), pending: true}
	g.pos = stickToPanel(ctx.Joystick().Pos, ctx.LCD())
	ctx.SetUpdate(g.Update)
}

func (g *Graphics) Update(ctx *engine.Context) bool {
	d := ctx.LCD()
	if wantsExit(ctx, &g.exit) {
		if g.invert {
			d.SetInversion(false)
		}
		return false
	}

	changed := g.pending
	if ctx.SW1().Pressed {
		g.color = (g.color + 1) % len(graphicsColors)
		changed = true
	}
	if ctx.SW2().Pressed {
		g.color = (g.color + len(graphicsColors) - 1) % len(graphicsColors)
		changed = true
	}
	if ctx.Select().Pressed {
		g.invert = !g.invert
		d.SetInversion(g.invert)
		changed = true
	}

	old := g.pos
	g.pos = stickToPanel(ctx.Joystick().Pos, d)
	if g.pos == old && !changed {
		return true
	}

	w, h := d.Size()
	cx, cy := w/2, h/2
	bg := d.Settings().Background
	if !g.pending {
		d.Line(cx, cy, old.X, old.Y, 1, bg)
		d.Circle(old.X, old.Y, cursorRadius, 1, bg)
	}
	c := graphicsColors[g.color]
	d.Line(cx, cy, g.pos.X, g.pos.Y, 1, c)
	d.Circle(g.pos.X, g.pos.Y, cursorRadius, 1, c)
	g.pending = false
	return true
}

// stickToPanel maps raw stick units onto the panel, keeping the cursor
// clear of the left and top edges. Low Y readings are up.
func stickToPanel(p image.Point, d *lcd.Device) image.Point {
	w, h := d.Size()
	out := image.Point{
		X: int(float64(p.X) / hal.JoystickMax * float64(w)),
		Y: int(float64(p.Y) / hal.JoystickMax * float64(h)),
	}
	out.X = min(max(out.X, 2), w-1)
	out.Y = min(max(out.Y, 2), h-1)
	return out
}
