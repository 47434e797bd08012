// Package demo holds the console's showcase screens: a joystick-driven
// graphics demo, a scrolling character demo and the palette cycle.
//
// Every demo returns to the menu when SEL is held for ExitHold.
package demo

import (
	"time"

	"tivagc/engine"
	"tivagc/input"
)

const ExitHold = time.Second

func exitHold() input.Hold {
	return input.Hold{Ticks: uint64(ExitHold.Milliseconds())}
}

func wantsExit(ctx *engine.Context, h *input.Hold) bool {
	return h.Update(ctx.Select(), ctx.Now())
}
