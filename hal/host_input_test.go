//go:build !tinygo

package hal

import (
	"testing"
	"time"
)

func TestHostInputLatchExpires(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	in := newHostInput(clock)
	in.latchButton(ButtonSW2, 150*time.Millisecond)
	if !in.Button(ButtonSW2) {
		t.Fatal("expected latched button to read pressed")
	}

	now = now.Add(149 * time.Millisecond)
	if !in.Button(ButtonSW2) {
		t.Fatal("expected button still pressed at t=149ms")
	}

	now = now.Add(time.Millisecond)
	if in.Button(ButtonSW2) {
		t.Fatal("expected latch to expire at t=150ms")
	}
}

func TestHostInputLevelsAndStick(t *testing.T) {
	now := time.Unix(0, 0)
	in := newHostInput(func() time.Time { return now })

	if x, y := in.Joystick(); x != JoystickCenter || y != JoystickCenter {
		t.Fatalf("initial stick = %d,%d", x, y)
	}

	in.setButton(ButtonSelect, true)
	if !in.Button(ButtonSelect) {
		t.Fatal("expected level-held button")
	}
	in.setButton(ButtonSelect, false)
	if in.Button(ButtonSelect) {
		t.Fatal("expected released button")
	}

	in.setJoystick(stickFromKeys(true, false, false, true))
	if x, y := in.Joystick(); x != JoystickMax || y != 0 {
		t.Fatalf("up-right stick = %d,%d", x, y)
	}

	in.latchJoystick(0, JoystickCenter, 100*time.Millisecond)
	if x, _ := in.Joystick(); x != 0 {
		t.Fatalf("latched stick x = %d", x)
	}
	now = now.Add(100 * time.Millisecond)
	if x, y := in.Joystick(); x != JoystickMax || y != 0 {
		t.Fatalf("stick after latch = %d,%d", x, y)
	}
}

func TestStickFromKeysOpposingKeysCancel(t *testing.T) {
	x, y := stickFromKeys(true, true, true, true)
	if x != JoystickCenter || y != JoystickCenter {
		t.Fatalf("stick = %d,%d", x, y)
	}
}

func TestHostTimeAccumulatesMilliseconds(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	ht.step(1)
	if got := <-ht.Ticks(); got != 1 {
		t.Fatalf("first tick = %d", got)
	}

	now = now.Add(2500 * time.Microsecond)
	ht.step(1)
	if got := <-ht.Ticks(); got != 3 {
		t.Fatalf("tick after 2.5ms = %d, want 3", got)
	}

	now = now.Add(500 * time.Microsecond)
	ht.step(1)
	if got := <-ht.Ticks(); got != 4 {
		t.Fatalf("tick after carry = %d, want 4", got)
	}
}

func TestPublishTickKeepsLatest(t *testing.T) {
	ch := make(chan uint64, 2)
	for seq := uint64(1); seq <= 5; seq++ {
		publishTick(ch, seq)
	}
	var last uint64
	for len(ch) > 0 {
		last = <-ch
	}
	if last != 5 {
		t.Fatalf("latest tick = %d, want 5", last)
	}
}

func TestHostSleepSkipsNonPositive(t *testing.T) {
	ht := newHostTime()
	var slept []time.Duration
	ht.sleep = func(d time.Duration) { slept = append(slept, d) }

	ht.Sleep(0)
	ht.Sleep(-time.Millisecond)
	ht.Sleep(10 * time.Millisecond)
	if len(slept) != 1 || slept[0] != 10*time.Millisecond {
		t.Fatalf("sleeps = %v", slept)
	}
}
