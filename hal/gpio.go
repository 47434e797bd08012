package hal

// OutputPin is a push-pull output line (D/C, CS, RST, backlight).
type OutputPin interface {
	High()
	Low()
}

// InputPin reads a line level.
type InputPin interface {
	Get() bool
}

func setPin(p OutputPin, high bool) {
	if p == nil {
		return
	}
	if high {
		p.High()
	} else {
		p.Low()
	}
}

// ActiveLow inverts an input so a button wired to ground with a pull-up
// reads true while pressed.
func ActiveLow(p InputPin) InputPin {
	if p == nil {
		return nil
	}
	return activeLow{p}
}

type activeLow struct {
	pin InputPin
}

func (a activeLow) Get() bool { return !a.pin.Get() }

// PinButtons reads the console buttons from one input line each.
// Missing pins read as released.
type PinButtons [NumButtons]InputPin

func (b PinButtons) Button(id ButtonID) bool {
	if id >= NumButtons || b[id] == nil {
		return false
	}
	return b[id].Get()
}

// Joystick axis reader: anything that yields the two raw axes.
type JoystickReader interface {
	Joystick() (x, y uint16)
}

// centeredStick is used when a board has no analog stick.
type centeredStick struct{}

func (centeredStick) Joystick() (x, y uint16) { return JoystickCenter, JoystickCenter }

// CombineInput joins a button source and a joystick source into one Input.
// A nil joystick reads as centred.
func CombineInput(buttons interface{ Button(ButtonID) bool }, stick JoystickReader) Input {
	if stick == nil {
		stick = centeredStick{}
	}
	return combinedInput{buttons: buttons, stick: stick}
}

type combinedInput struct {
	buttons interface{ Button(ButtonID) bool }
	stick   JoystickReader
}

func (c combinedInput) Button(id ButtonID) bool {
	if c.buttons == nil {
		return false
	}
	return c.buttons.Button(id)
}

func (c combinedInput) Joystick() (x, y uint16) { return c.stick.Joystick() }
