package hal

import "testing"

type fakeLine struct {
	level bool
	edges int
}

func (l *fakeLine) High()     { l.level = true; l.edges++ }
func (l *fakeLine) Low()      { l.level = false; l.edges++ }
func (l *fakeLine) Get() bool { return l.level }

type fixedStick struct{ x, y uint16 }

func (s fixedStick) Joystick() (x, y uint16) { return s.x, s.y }

func TestPinButtonsActiveLow(t *testing.T) {
	sw1 := &fakeLine{level: true} // pulled up, released
	sel := &fakeLine{level: false}
	b := PinButtons{ButtonSW1: ActiveLow(sw1), ButtonSelect: sel}

	if b.Button(ButtonSW1) {
		t.Fatal("released active-low button should read false")
	}
	sw1.level = false
	if !b.Button(ButtonSW1) {
		t.Fatal("grounded active-low button should read true")
	}
	if b.Button(ButtonSW2) {
		t.Fatal("missing pin should read released")
	}
	if b.Button(NumButtons) {
		t.Fatal("out-of-range id should read released")
	}
	if ActiveLow(nil) != nil {
		t.Fatal("ActiveLow(nil) should stay nil")
	}
}

func TestCombineInputDefaultsToCentredStick(t *testing.T) {
	in := CombineInput(PinButtons{}, nil)
	if x, y := in.Joystick(); x != JoystickCenter || y != JoystickCenter {
		t.Fatalf("stick = %d,%d", x, y)
	}

	in = CombineInput(nil, fixedStick{x: 1, y: 4095})
	if x, y := in.Joystick(); x != 1 || y != 4095 {
		t.Fatalf("stick = %d,%d", x, y)
	}
	if in.Button(ButtonSW1) {
		t.Fatal("nil button source should read released")
	}
}

func TestSetPin(t *testing.T) {
	l := &fakeLine{}
	setPin(l, true)
	if !l.level {
		t.Fatal("expected high")
	}
	setPin(l, false)
	if l.level || l.edges != 2 {
		t.Fatalf("expected low after 2 edges, got level=%v edges=%d", l.level, l.edges)
	}
	setPin(nil, true)
}
