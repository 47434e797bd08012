package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Transport is the panel's serial link. Commands and data travel over the
// same bus and are told apart by the D/C side channel.
type Transport interface {
	// Select drives chip select; true selects the panel (line low).
	Select(on bool) error
	Command(op byte) error
	Data(b byte) error
	DataBytes(buf []byte) error
}

// Display is a Transport that can also pulse the panel's reset line.
// Reset blocks for the whole pulse including the recovery delay.
type Display interface {
	Transport
	Reset() error
}

// ButtonID names one of the console's push buttons.
type ButtonID uint8

const (
	ButtonSW1 ButtonID = iota
	ButtonSW2
	ButtonSelect

	NumButtons
)

func (b ButtonID) String() string {
	switch b {
	case ButtonSW1:
		return "SW1"
	case ButtonSW2:
		return "SW2"
	case ButtonSelect:
		return "SEL"
	default:
		return "?"
	}
}

// Joystick axes are raw 12-bit ADC readings.
const (
	JoystickMax    = 4095
	JoystickCenter = 2048
)

// Input is the raw, unfiltered input edge. Button reports the line level
// (true while pressed) and Joystick returns both axes in 0..JoystickMax.
type Input interface {
	Button(id ButtonID) bool
	Joystick() (x, y uint16)
}

// TickRate is the frequency of the tick stream on every backend.
const TickRate = 1000

// Time provides a free-running tick stream and a blocking delay.
//
// Ticks carries the running tick sequence number; a consumer that falls
// behind may miss values but the latest value is always the total.
type Time interface {
	Ticks() <-chan uint64
	Sleep(d time.Duration)
}

// HAL provides the only contact point between the console and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
