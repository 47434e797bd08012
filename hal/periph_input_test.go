//go:build !tinygo

package hal

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type fakeADC struct {
	*gpiotest.Pin
	raw    int32
	lo, hi int32
	err    error
}

func (a *fakeADC) Range() (analog.Sample, analog.Sample) {
	return analog.Sample{Raw: a.lo}, analog.Sample{Raw: a.hi}
}

func (a *fakeADC) Read() (analog.Sample, error) {
	return analog.Sample{Raw: a.raw}, a.err
}

func TestPeriphButtonsPullUpActiveLow(t *testing.T) {
	sw1 := &gpiotest.Pin{N: "SW1"}
	b, err := NewPeriphButtons([NumButtons]gpio.PinIn{ButtonSW1: sw1})
	if err != nil {
		t.Fatal(err)
	}
	if sw1.Pull() != gpio.PullUp {
		t.Fatalf("pull = %s", sw1.Pull())
	}
	if b.Button(ButtonSW1) {
		t.Fatal("pulled-up line should read released")
	}
	sw1.Out(gpio.Low)
	if !b.Button(ButtonSW1) {
		t.Fatal("grounded line should read pressed")
	}
	if b.Button(ButtonSW2) {
		t.Fatal("unwired button should read released")
	}
}

func TestPeriphStickScalesToTwelveBits(t *testing.T) {
	x := &fakeADC{Pin: &gpiotest.Pin{N: "AX"}, raw: 1023, lo: 0, hi: 1023}
	y := &fakeADC{Pin: &gpiotest.Pin{N: "AY"}, raw: 0, lo: 0, hi: 1023}
	s := NewPeriphStick(x, y)

	if gx, gy := s.Joystick(); gx != JoystickMax || gy != 0 {
		t.Fatalf("stick = %d,%d", gx, gy)
	}

	x.raw = 512
	if gx, _ := s.Joystick(); gx != 2049 {
		t.Fatalf("mid x = %d", gx)
	}

	x.err = errors.New("adc busy")
	if gx, _ := s.Joystick(); gx != 2049 {
		t.Fatalf("x after failure = %d, want last good value", gx)
	}
	if s.Err() == nil {
		t.Fatal("expected the read failure to be reported")
	}
}

func TestScaleAxisDegenerateRange(t *testing.T) {
	if got := scaleAxis(5, 10, 10); got != JoystickCenter {
		t.Fatalf("scaleAxis = %d", got)
	}
	if got := scaleAxis(-3, 0, 100); got != 0 {
		t.Fatalf("scaleAxis below range = %d", got)
	}
}
