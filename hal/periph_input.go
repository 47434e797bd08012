//go:build !tinygo

package hal

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
)

// PeriphButtons reads active-low push buttons on periph GPIO lines.
type PeriphButtons struct {
	pins [NumButtons]gpio.PinIn
}

// NewPeriphButtons enables the internal pull-ups on the given pins.
// Nil entries read as released.
func NewPeriphButtons(pins [NumButtons]gpio.PinIn) (*PeriphButtons, error) {
	for id, p := range pins {
		if p == nil {
			continue
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("periph buttons: %s on %s: %w", ButtonID(id), p, err)
		}
	}
	return &PeriphButtons{pins: pins}, nil
}

func (b *PeriphButtons) Button(id ButtonID) bool {
	if id >= NumButtons || b.pins[id] == nil {
		return false
	}
	return b.pins[id].Read() == gpio.Low
}

// PeriphStick reads a two-axis analog stick through periph ADC pins and
// rescales the samples to the 12-bit joystick range.
type PeriphStick struct {
	x, y analog.PinADC

	mu   sync.Mutex
	last [2]uint16
	err  error
}

func NewPeriphStick(x, y analog.PinADC) *PeriphStick {
	return &PeriphStick{x: x, y: y, last: [2]uint16{JoystickCenter, JoystickCenter}}
}

// Joystick returns the last good reading when an ADC read fails; Err
// reports the most recent failure.
func (s *PeriphStick) Joystick() (x, y uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range [2]analog.PinADC{s.x, s.y} {
		v, err := readAxis(p)
		if err != nil {
			s.err = err
			continue
		}
		s.last[i] = v
	}
	return s.last[0], s.last[1]
}

func (s *PeriphStick) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func readAxis(p analog.PinADC) (uint16, error) {
	if p == nil {
		return JoystickCenter, nil
	}
	smp, err := p.Read()
	if err != nil {
		return 0, fmt.Errorf("periph stick: %s: %w", p, err)
	}
	lo, hi := p.Range()
	return scaleAxis(smp.Raw, lo.Raw, hi.Raw), nil
}

func scaleAxis(raw, lo, hi int32) uint16 {
	if hi <= lo {
		return JoystickCenter
	}
	if raw <= lo {
		return 0
	}
	if raw >= hi {
		return JoystickMax
	}
	return uint16(int64(raw-lo) * JoystickMax / int64(hi-lo))
}
