//go:build linux && !tinygo

package hal

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"
)

func TestEvdevKeysMapToButtons(t *testing.T) {
	in := &EvdevInput{}
	in.apply(evdev.EV_KEY, evdev.KEY_Z, 1)
	in.apply(evdev.EV_KEY, evdev.BTN_START, 2)
	if !in.Button(ButtonSW1) || !in.Button(ButtonSelect) {
		t.Fatal("expected SW1 and SEL down")
	}
	in.apply(evdev.EV_KEY, evdev.KEY_Z, 0)
	if in.Button(ButtonSW1) {
		t.Fatal("SW1 should be released")
	}
	if in.Button(ButtonSW2) {
		t.Fatal("SW2 never pressed")
	}
}

func TestEvdevAxesScale(t *testing.T) {
	in := &EvdevInput{}
	in.axes[0] = evdevAxis{present: true, min: -32768, max: 32767}
	in.axes[1] = evdevAxis{present: true, min: 0, max: 255}

	if x, y := in.Joystick(); x != JoystickCenter || y != JoystickCenter {
		t.Fatalf("unseen axes = %d,%d", x, y)
	}

	in.apply(evdev.EV_ABS, evdev.ABS_X, 32767)
	in.apply(evdev.EV_ABS, evdev.ABS_Y, 0)
	if x, y := in.Joystick(); x != JoystickMax || y != 0 {
		t.Fatalf("stick = %d,%d", x, y)
	}
}

func TestEvdevArrowsOverrideAxes(t *testing.T) {
	in := &EvdevInput{}
	in.axes[0] = evdevAxis{present: true, min: 0, max: 255, value: 128, seen: true}
	in.apply(evdev.EV_KEY, evdev.KEY_LEFT, 1)
	if x, _ := in.Joystick(); x != 0 {
		t.Fatalf("x = %d, want 0", x)
	}
	in.apply(evdev.EV_KEY, evdev.KEY_LEFT, 0)
	if x, _ := in.Joystick(); x == 0 {
		t.Fatal("axis should take over once the arrow is released")
	}
}
