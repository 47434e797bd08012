// Package app assembles the console: display driver, input sampler,
// engine, main menu and the bundled games.
package app

import (
	"fmt"
	"runtime/debug"

	"tivagc/engine"
	"tivagc/games/demo"
	"tivagc/games/menu"
	"tivagc/games/pong"
	"tivagc/games/snake"
	"tivagc/games/tetris"
	"tivagc/hal"
	"tivagc/input"
	"tivagc/internal/buildinfo"
	"tivagc/lcd"
)

type Config struct {
	// Splash overrides the boot title; "-" disables the splash.
	Splash string
	// Seed fixes the PRNG seed for reproducible runs.
	Seed   int64
	Stroke lcd.StrokePolicy
}

const defaultSplash = "TivaGC"

type console struct {
	h   hal.HAL
	lcd *lcd.Device
	eng *engine.Engine
	err error
}

// New boots the console with the default config and returns its step
// function. Hosts call step once per frame.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig is New with explicit settings.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	c, err := newConsole(h, cfg)
	if err != nil {
		logLine(h, fmt.Sprintf("app: %v", err))
		return func() error { return err }
	}
	return c.step
}

// Run boots the console and loops forever (TinyGo entrypoint). A fatal
// error or panic leaves its screen up and parks.
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			select {}
		}
	}
}

func newConsole(h hal.HAL, cfg Config) (*console, error) {
	d, err := lcd.New(h.Display(), h.Time(), &lcd.Config{Stroke: cfg.Stroke})
	if err != nil {
		return nil, err
	}
	s := input.NewSampler(h.Input(), h.Time(), nil)

	splash := cfg.Splash
	switch splash {
	case "":
		splash = defaultSplash
	case "-":
		splash = ""
	}
	eng := engine.New(d, s, h.Time(), h.Logger(), &engine.Config{
		Splash:       splash,
		SplashDetail: buildinfo.Short(),
		Seed:         cfg.Seed,
	})
	eng.SetMainMenu(mainMenu().Run)

	c := &console{h: h, lcd: d, eng: eng}
	if err := c.guard(eng.Setup); err != nil {
		return nil, err
	}
	return c, nil
}

func mainMenu() *menu.Menu {
	var (
		sn snake.Game
		pg pong.Game
		tt tetris.Game
		gr demo.Graphics
		tx demo.Text
		co demo.Colors
	)
	return menu.New("TivaGC",
		menu.Item{Name: "Snake", Start: sn.Start},
		menu.Item{Name: "Pong", Start: pg.Start},
		menu.Item{Name: "Tetris", Start: tt.Start},
		menu.Item{Name: "Graphics", Start: gr.Start},
		menu.Item{Name: "Text", Start: tx.Start},
		menu.Item{Name: "Colors", Start: co.Start},
	)
}

// step runs one engine iteration. The first error sticks.
func (c *console) step() error {
	if c.err != nil {
		return c.err
	}
	c.err = c.guard(c.eng.Step)
	return c.err
}

// guard runs fn and turns a panic into a panic screen and an error.
func (c *console) guard(fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		stack := debug.Stack()
		showPanic(c.h.Logger(), c.lcd, v, stack)
		err = fmt.Errorf("app: panic: %v", v)
	}()
	return fn()
}

func logLine(h hal.HAL, s string) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(s)
	}
}
