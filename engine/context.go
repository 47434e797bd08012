package engine

import (
	"math/rand"
	"time"

	"tivagc/hal"
	"tivagc/input"
	"tivagc/lcd"
)

// Context is what callbacks see of the engine. It is only valid inside the
// callback it was passed to.
type Context struct {
	e *Engine
}

func (c *Context) LCD() *lcd.Device { return c.e.lcd }

// Input returns this frame's sampled state.
func (c *Context) Input() *input.State { return &c.e.in }

func (c *Context) SW1() input.Button        { return c.e.in.SW1() }
func (c *Context) SW2() input.Button        { return c.e.in.SW2() }
func (c *Context) Select() input.Button     { return c.e.in.Select() }
func (c *Context) Joystick() input.Joystick { return c.e.in.Joystick }
func (c *Context) Rand() *rand.Rand         { return c.e.rng }
func (c *Context) Frame() uint64            { return c.e.frame }
func (c *Context) TickRate() int            { return hal.TickRate }
func (c *Context) SetUpdate(fn UpdateFunc)  { c.e.SetUpdate(fn) }
func (c *Context) SetMainMenu(fn MenuFunc)  { c.e.SetMainMenu(fn) }
func (c *Context) Delay(d time.Duration)    { c.e.clock.Sleep(d) }

// Ticks returns the ticks elapsed since the last PopTicks.
func (c *Context) Ticks() uint64 {
	c.e.pollTicks()
	return c.e.seq - c.e.mark
}

// Now returns the total ticks seen since boot.
func (c *Context) Now() uint64 {
	c.e.pollTicks()
	return c.e.seq
}

// PopTicks returns the ticks elapsed since the last pop and restarts the
// count.
func (c *Context) PopTicks() uint64 {
	n := c.Ticks()
	c.e.mark = c.e.seq
	return n
}

// Elapsed pops the tick count when at least d has passed. Games call it
// to pace their logic:
//
//	if !ctx.Elapsed(50 * time.Millisecond) {
//		return true
//	}
func (c *Context) Elapsed(d time.Duration) bool {
	want := uint64(d * hal.TickRate / time.Second)
	if c.Ticks() < want {
		return false
	}
	c.PopTicks()
	return true
}

func (c *Context) Logf(format string, args ...any) { c.e.logf(format, args...) }
