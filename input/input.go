// Package input turns the raw button lines and joystick ADC readings into
// per-frame state: debounced presses, held levels and a noise-gated stick
// position with direction flags.
package input

import (
	"image"
	"time"

	"tivagc/hal"
)

// Defaults applied to zero Config fields.
const (
	DefaultDebounceDelay = 10 * time.Millisecond
	DefaultDeadband      = 32
	DefaultThreshold     = 1024
)

// Sleeper blocks for a fixed delay. hal.Time satisfies it.
type Sleeper interface {
	Sleep(d time.Duration)
}

type Config struct {
	DebounceDelay time.Duration
	Deadband      int
	Threshold     image.Point
}

func (c *Config) withDefaults() Config {
	var out Config
	if c != nil {
		out = *c
	}
	if out.DebounceDelay <= 0 {
		out.DebounceDelay = DefaultDebounceDelay
	}
	if out.Deadband <= 0 {
		out.Deadband = DefaultDeadband
	}
	if out.Threshold.X <= 0 {
		out.Threshold.X = DefaultThreshold
	}
	if out.Threshold.Y <= 0 {
		out.Threshold.Y = DefaultThreshold
	}
	return out
}

// Button is one button's state for the current frame. Pressed is true
// only on the frame a debounced press completes; Held stays true while
// the button is down.
type Button struct {
	Pressed bool
	Held    bool
}

// Joystick is the filtered stick for the current frame. Pos is in raw
// ADC units (0..4095 per axis). The direction flags are only recomputed
// on frames where Changed is set.
type Joystick struct {
	Pos     image.Point
	Changed bool

	Up, Down, Left, Right bool

	Threshold image.Point
}

// State is everything the sampler produces in one frame.
type State struct {
	Buttons  [hal.NumButtons]Button
	Joystick Joystick
}

func (s *State) SW1() Button    { return s.Buttons[hal.ButtonSW1] }
func (s *State) SW2() Button    { return s.Buttons[hal.ButtonSW2] }
func (s *State) Select() Button { return s.Buttons[hal.ButtonSelect] }

// Debouncer confirms presses by re-sampling after a short delay and
// reports each physical press once.
type Debouncer struct {
	in     hal.Input
	clock  Sleeper
	delay  time.Duration
	sticky [hal.NumButtons]bool
}

func NewDebouncer(in hal.Input, clock Sleeper, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{in: in, clock: clock, delay: delay}
}

// Read returns true once per press: a released line clears the latch, a
// pressed line with the latch clear waits out the bounce, re-samples and
// latches whatever it sees.
func (d *Debouncer) Read(id hal.ButtonID) bool {
	if id >= hal.NumButtons {
		return false
	}
	if !d.in.Button(id) {
		d.sticky[id] = false
		return false
	}
	if d.sticky[id] {
		return false
	}
	if d.clock != nil {
		d.clock.Sleep(d.delay)
	}
	d.sticky[id] = d.in.Button(id)
	return d.sticky[id]
}

// Deadband suppresses stick jitter.
type Deadband struct {
	in    hal.Input
	width int
}

func NewDeadband(in hal.Input, width int) *Deadband {
	if width <= 0 {
		width = DefaultDeadband
	}
	return &Deadband{in: in, width: width}
}

// Filter reads the stick and returns prev unless at least one axis moved
// by the deadband width or more.
func (f *Deadband) Filter(prev image.Point) image.Point {
	cur := raw(f.in)
	if abs(cur.X-prev.X) < f.width && abs(cur.Y-prev.Y) < f.width {
		return prev
	}
	return cur
}

func raw(in hal.Input) image.Point {
	x, y := in.Joystick()
	return image.Pt(int(x), int(y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Hold detects a button kept down for at least Ticks ticks. It fires once
// per press.
type Hold struct {
	Ticks uint64

	start uint64
	down  bool
	fired bool
}

// Update feeds this frame's button state and the current tick count.
func (h *Hold) Update(b Button, now uint64) bool {
	if !b.Held {
		h.down, h.fired = false, false
		return false
	}
	if !h.down {
		h.down, h.start = true, now
	}
	if h.fired || now-h.start < h.Ticks {
		return false
	}
	h.fired = true
	return true
}
