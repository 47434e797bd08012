//go:build !linux && !tinygo

package hal

// EvdevInput is only available on Linux.
type EvdevInput struct{}

func OpenEvdev(string) (*EvdevInput, error) { return nil, ErrNotImplemented }

func (*EvdevInput) Button(ButtonID) bool    { return false }
func (*EvdevInput) Joystick() (x, y uint16) { return JoystickCenter, JoystickCenter }
func (*EvdevInput) Err() error              { return nil }
func (*EvdevInput) Close() error            { return nil }
