package input

import (
	"image"

	"tivagc/hal"
)

// Sampler produces one State per call to Sample. It must be driven from a
// single goroutine.
type Sampler struct {
	in   hal.Input
	deb  *Debouncer
	band *Deadband

	state State
}

func NewSampler(in hal.Input, clock Sleeper, cfg *Config) *Sampler {
	c := cfg.withDefaults()
	s := &Sampler{
		in:   in,
		deb:  NewDebouncer(in, clock, c.DebounceDelay),
		band: NewDeadband(in, c.Deadband),
	}
	s.state.Joystick.Threshold = c.Threshold
	return s
}

// Sample reads every button and the stick once and returns the new state.
func (s *Sampler) Sample() State {
	for id := hal.ButtonID(0); id < hal.NumButtons; id++ {
		raw := s.in.Button(id)
		pressed := s.deb.Read(id)
		s.state.Buttons[id] = Button{
			Pressed: pressed,
			Held:    pressed || (raw && s.in.Button(id)),
		}
	}

	js := &s.state.Joystick
	pos := s.band.Filter(js.Pos)
	js.Changed = pos != js.Pos
	js.Pos = pos
	if js.Changed {
		js.Up = pos.Y < hal.JoystickCenter-js.Threshold.Y
		js.Down = pos.Y > hal.JoystickCenter+js.Threshold.Y
		js.Left = pos.X < hal.JoystickCenter-js.Threshold.X
		js.Right = pos.X > hal.JoystickCenter+js.Threshold.X
	}
	return s.state
}

// State returns the result of the last Sample.
func (s *Sampler) State() State { return s.state }

func (s *Sampler) Raw(id hal.ButtonID) bool       { return s.in.Button(id) }
func (s *Sampler) Debounced(id hal.ButtonID) bool { return s.deb.Read(id) }
func (s *Sampler) JoystickRaw() image.Point       { return raw(s.in) }

func (s *Sampler) JoystickFiltered(prev image.Point) image.Point {
	return s.band.Filter(prev)
}

// Noise folds the two low-order bits of each axis over n raw stick reads.
// It is only as random as the ADC is noisy; use it to seed a PRNG.
func (s *Sampler) Noise(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		x, y := s.in.Joystick()
		v = v<<4 | uint64(x&3)<<2 | uint64(y&3)
	}
	return v
}
