package app

import (
	"strings"
	"testing"

	"tivagc/engine/enginetest"
	"tivagc/hal"
	"tivagc/lcd"
)

type testHAL struct {
	panel *hal.Panel
	in    *enginetest.Input
	clock *enginetest.Clock
	log   *enginetest.Log
}

func newTestHAL() *testHAL {
	h := &testHAL{
		panel: hal.NewPanel(132, 132),
		in:    &enginetest.Input{},
		clock: enginetest.NewClock(),
		log:   &enginetest.Log{},
	}
	h.in.Centre()
	return h
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h.panel }
func (h *testHAL) Input() hal.Input     { return h.in }
func (h *testHAL) Time() hal.Time       { return h.clock }

func (h *testHAL) logged(sub string) bool {
	for _, l := range h.log.Lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func TestBootShowsMenu(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Seed: 7})
	if !h.logged("engine: ready (seed 0x7)") {
		t.Fatalf("log = %q", h.log.Lines)
	}
	if h.clock.Slept < 1500e6 {
		t.Fatalf("splash slept %v", h.clock.Slept)
	}

	h.panel.ResetStats()
	if err := step(); err != nil {
		t.Fatal(err)
	}
	if h.panel.Stats().PixelWrites == 0 {
		t.Fatal("menu not drawn")
	}
	if !h.panel.On() {
		t.Fatal("panel left off")
	}
}

func TestStartFirstGame(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Splash: "-", Seed: 1})
	for i := 0; i < 2; i++ {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}
	h.in.Buttons[hal.ButtonSW1] = true
	if err := step(); err != nil {
		t.Fatal(err)
	}
	if !h.logged("menu: starting Snake") {
		t.Fatalf("log = %q", h.log.Lines)
	}
}

func TestPanicScreen(t *testing.T) {
	h := newTestHAL()
	c, err := newConsole(h, Config{Splash: "-", Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	c.err = c.guard(func() error { panic("boom") })
	if c.err == nil || !strings.Contains(c.err.Error(), "boom") {
		t.Fatalf("err = %v", c.err)
	}
	if err := c.step(); err != c.err {
		t.Fatalf("step after panic = %v", err)
	}
	if !h.logged("TivaGC panic: boom") {
		t.Fatalf("log = %q", h.log.Lines)
	}
	if r, g, b := h.panel.RGB(131, 131); r != lcd.Blue.R || g != lcd.Blue.G || b != lcd.Blue.B {
		t.Fatalf("corner = %d,%d,%d", r, g, b)
	}
	lit := 0
	for x := 0; x < 30; x++ {
		for y := 0; y < 8; y++ {
			if r, g, b := h.panel.RGB(x, y); r == 0x3F && g == 0x3F && b == 0x3F {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("panic title not drawn")
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int
		head, tail string
	}{
		{"hello", 10, "hello", ""},
		{"hello world", 5, "hello", " world"},
		{"héllo", 2, "hé", "llo"},
		{"x", 0, "", "x"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q", tt.s, tt.n, head, tail)
		}
	}
}

func TestStackLines(t *testing.T) {
	stack := []byte("goroutine 1 [running]:\nmain.f()\n\t/x/main.go:3 +0x1\nmain.main()\n\t/x/main.go:7 +0x2\n")
	got := stackLines(stack)
	if len(got) != 2 || got[0] != "main.f()" || got[1] != "main.main()" {
		t.Fatalf("stackLines = %q", got)
	}
}
