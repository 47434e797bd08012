// Package enginetest runs an engine against an in-memory panel with
// scripted input and a hand-driven tick stream.
package enginetest

import (
	"testing"
	"time"

	"tivagc/engine"
	"tivagc/hal"
	"tivagc/input"
	"tivagc/lcd"
)

// Input is a hal.Input whose levels the test sets directly.
type Input struct {
	Buttons [hal.NumButtons]bool
	X, Y    uint16
}

func (in *Input) Button(id hal.ButtonID) bool { return in.Buttons[id] }
func (in *Input) Joystick() (x, y uint16)     { return in.X, in.Y }

// Centre releases every button and centres the stick.
func (in *Input) Centre() {
	*in = Input{X: hal.JoystickCenter, Y: hal.JoystickCenter}
}

// Clock is a hal.Time that only moves when Advance is called. Sleep
// records the request and returns at once.
type Clock struct {
	ch    chan uint64
	seq   uint64
	Slept time.Duration
}

func NewClock() *Clock { return &Clock{ch: make(chan uint64, 1)} }

func (c *Clock) Ticks() <-chan uint64  { return c.ch }
func (c *Clock) Sleep(d time.Duration) { c.Slept += d }

// Advance publishes d worth of ticks.
func (c *Clock) Advance(d time.Duration) {
	c.seq += uint64(d * hal.TickRate / time.Second)
	select {
	case <-c.ch:
	default:
	}
	c.ch <- c.seq
}

// Log collects engine log lines.
type Log struct{ Lines []string }

func (l *Log) WriteLineString(s string) { l.Lines = append(l.Lines, s) }
func (l *Log) WriteLineBytes(b []byte)  { l.Lines = append(l.Lines, string(b)) }

type Rig struct {
	Panel  *hal.Panel
	Input  *Input
	Clock  *Clock
	Log    *Log
	LCD    *lcd.Device
	Engine *engine.Engine
}

// New builds an initialised 132x132 rig with a fixed seed and no splash.
func New(t testing.TB) *Rig {
	t.Helper()
	r := &Rig{
		Panel: hal.NewPanel(132, 132),
		Input: &Input{},
		Clock: NewClock(),
		Log:   &Log{},
	}
	r.Input.Centre()
	d, err := lcd.New(r.Panel, r.Clock, nil)
	if err != nil {
		t.Fatal(err)
	}
	r.LCD = d
	s := input.NewSampler(r.Input, r.Clock, nil)
	r.Engine = engine.New(d, s, r.Clock, r.Log, &engine.Config{Seed: 1})
	if err := r.Engine.Setup(); err != nil {
		t.Fatal(err)
	}
	return r
}

// Step runs one engine iteration and fails the test on error.
func (r *Rig) Step(t testing.TB) {
	t.Helper()
	if err := r.Engine.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
}

// Run advances the clock by every and steps, n times.
func (r *Rig) Run(t testing.TB, n int, every time.Duration) {
	t.Helper()
	for i := 0; i < n; i++ {
		r.Clock.Advance(every)
		r.Step(t)
	}
}

// Press holds id down for one step and releases it on the next.
func (r *Rig) Press(t testing.TB, id hal.ButtonID) {
	t.Helper()
	r.Input.Buttons[id] = true
	r.Step(t)
	r.Input.Buttons[id] = false
	r.Step(t)
}

// Count returns how many panel pixels currently show c.
func (r *Rig) Count(c lcd.Color) int {
	b := r.Panel.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if cr, cg, cb := r.Panel.RGB(x, y); cr == c.R && cg == c.G && cb == c.B {
				n++
			}
		}
	}
	return n
}
