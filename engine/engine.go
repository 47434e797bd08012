// Package engine is the console's cooperative game loop. Each Step samples
// the input once and then runs exactly one callback: the main menu, or the
// update function of the game that is currently running. An update that
// returns false hands control back to the menu.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"tivagc/hal"
	"tivagc/input"
	"tivagc/lcd"
)

var ErrNoMainMenu = errors.New("engine: no main menu function set")

// MenuFunc draws and drives the main menu. It runs every iteration while
// no game is active.
type MenuFunc func(*Context)

// UpdateFunc runs one iteration of a game and reports whether the game
// wants to keep running.
type UpdateFunc func(*Context) bool

type state interface{ isState() }

type menuState struct{ fn MenuFunc }
type runningState struct{ fn UpdateFunc }

func (menuState) isState()    {}
func (runningState) isState() {}

const (
	DefaultSplashDuration = 1500 * time.Millisecond
	DefaultSettleSamples  = 4
)

type Config struct {
	// Splash is shown centred during Setup; empty skips the splash.
	Splash         string
	SplashDetail   string
	SplashDuration time.Duration

	// SettleSamples input frames are discarded before the first dispatch.
	SettleSamples int

	// Seed fixes the PRNG seed; 0 seeds from joystick noise.
	Seed int64
}

type Engine struct {
	lcd     *lcd.Device
	sampler *input.Sampler
	clock   hal.Time
	log     hal.Logger
	cfg     Config

	menu  MenuFunc
	state state
	ctx   Context

	in    input.State
	seq   uint64
	mark  uint64
	frame uint64
	rng   *rand.Rand

	halted error
}

// New wires an engine. log may be nil.
func New(d *lcd.Device, s *input.Sampler, clock hal.Time, log hal.Logger, cfg *Config) *Engine {
	e := &Engine{
		lcd:     d,
		sampler: s,
		clock:   clock,
		log:     log,
		state:   menuState{},
		rng:     rand.New(rand.NewSource(1)),
	}
	if cfg != nil {
		e.cfg = *cfg
	}
	if e.cfg.SplashDuration <= 0 {
		e.cfg.SplashDuration = DefaultSplashDuration
	}
	if e.cfg.SettleSamples <= 0 {
		e.cfg.SettleSamples = DefaultSettleSamples
	}
	e.ctx.e = e
	return e
}

// SetMainMenu installs the menu. While no game runs it takes effect on the
// next Step.
func (e *Engine) SetMainMenu(fn MenuFunc) {
	e.menu = fn
	if _, ok := e.state.(menuState); ok {
		e.state = menuState{fn: fn}
	}
}

// SetUpdate starts fn on the next Step. A nil fn returns to the menu.
func (e *Engine) SetUpdate(fn UpdateFunc) {
	if fn == nil {
		e.state = menuState{fn: e.menu}
		return
	}
	e.state = runningState{fn: fn}
	e.logf("engine: update started at frame %d", e.frame)
}

// Running reports whether a game update is active.
func (e *Engine) Running() bool {
	_, ok := e.state.(runningState)
	return ok
}

// Setup brings up the display, seeds the PRNG, shows the splash and lets
// the input filters settle.
func (e *Engine) Setup() error {
	if err := e.lcd.Init(); err != nil {
		return fmt.Errorf("engine: display init: %w", err)
	}
	e.lcd.SetBackground(lcd.Black)
	e.lcd.Clear()

	seed := e.cfg.Seed
	if seed == 0 {
		seed = int64(e.sampler.Noise(16))
	}
	e.rng.Seed(seed)

	if e.cfg.Splash != "" {
		e.splash()
	}
	for i := 0; i < e.cfg.SettleSamples; i++ {
		e.in = e.sampler.Sample()
	}
	e.pollTicks()
	e.mark = e.seq

	if err := e.lcd.Err(); err != nil {
		return fmt.Errorf("engine: display: %w", err)
	}
	e.logf("engine: ready (seed %#x)", seed)
	return nil
}

func (e *Engine) splash() {
	cols, rows := e.lcd.TextGrid()
	row := rows/2 - 1
	e.lcd.DrawString(centre(cols, e.cfg.Splash), row, e.cfg.Splash, 0, lcd.White)
	if e.cfg.SplashDetail != "" {
		e.lcd.DrawString(centre(cols, e.cfg.SplashDetail), row+2, e.cfg.SplashDetail, 0, lcd.Grey)
	}
	e.clock.Sleep(e.cfg.SplashDuration)
	e.lcd.Clear()
}

func centre(cols int, s string) int {
	if len(s) >= cols {
		return 0
	}
	return (cols - len(s)) / 2
}

// Step runs one iteration. It returns ErrNoMainMenu, after drawing it on
// the panel, when the menu is due but none was set; every later Step
// returns the same error.
func (e *Engine) Step() error {
	if e.halted != nil {
		return e.halted
	}
	if m, ok := e.state.(menuState); ok && m.fn == nil {
		return e.fatal(ErrNoMainMenu)
	}

	e.pollTicks()
	e.in = e.sampler.Sample()
	e.frame++

	switch s := e.state.(type) {
	case menuState:
		s.fn(&e.ctx)
	case runningState:
		if !s.fn(&e.ctx) {
			e.state = menuState{fn: e.menu}
			e.logf("engine: update finished at frame %d", e.frame)
		}
	}
	return nil
}

// Run sets up and loops forever, returning only on a fatal error.
func (e *Engine) Run() error {
	if err := e.Setup(); err != nil {
		return err
	}
	for {
		if err := e.Step(); err != nil {
			return err
		}
	}
}

func (e *Engine) fatal(err error) error {
	e.halted = err
	e.lcd.SetBackground(lcd.Black)
	e.lcd.Clear()
	e.lcd.DrawString(0, 0, "E: No main menu", 0, lcd.Red)
	e.lcd.DrawString(3, 1, "function set!", 0, lcd.Red)
	e.logf("%v", err)
	return err
}

// pollTicks drains the tick stream without blocking and keeps the newest
// sequence number.
func (e *Engine) pollTicks() {
	if e.clock == nil {
		return
	}
	ch := e.clock.Ticks()
	if ch == nil {
		return
	}
	for {
		select {
		case seq, ok := <-ch:
			if !ok {
				return
			}
			if seq > e.seq {
				e.seq = seq
			}
		default:
			return
		}
	}
}

func (e *Engine) logf(format string, args ...any) {
	if e.log == nil {
		return
	}
	e.log.WriteLineString(fmt.Sprintf(format, args...))
}
