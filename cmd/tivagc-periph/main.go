//go:build !tinygo

// Command tivagc-periph runs the console on a Linux board with the panel
// on SPI and the controls on GPIO lines or an evdev gamepad.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"periph.io/x/conn/v3/physic"

	"tivagc/app"
	"tivagc/hal"
	"tivagc/internal/buildinfo"
)

func main() {
	var (
		cfg    hal.PeriphConfig
		appCfg app.Config
		fps    int
	)
	cfg.Freq = 15 * physic.MegaHertz
	flag.StringVar(&cfg.SPI, "spi", "", "SPI port name (empty = first port).")
	flag.Var(&cfg.Freq, "freq", "SPI clock.")
	flag.StringVar(&cfg.DC, "dc", "GPIO25", "D/C line.")
	flag.StringVar(&cfg.CS, "cs", "", "Chip select line when not driven by the SPI port.")
	flag.StringVar(&cfg.RST, "rst", "GPIO24", "Reset line.")
	flag.StringVar(&cfg.Buttons[hal.ButtonSW1], "sw1", "GPIO5", "SW1 line.")
	flag.StringVar(&cfg.Buttons[hal.ButtonSW2], "sw2", "GPIO6", "SW2 line.")
	flag.StringVar(&cfg.Buttons[hal.ButtonSelect], "sel", "GPIO13", "SEL line.")
	flag.StringVar(&cfg.Evdev, "evdev", "", "Input device path or name; replaces the GPIO buttons.")
	flag.StringVar(&appCfg.Splash, "splash", "", `Boot title ("-" skips the splash).`)
	flag.Int64Var(&appCfg.Seed, "seed", 0, "Fixed PRNG seed (0 = joystick noise).")
	flag.IntVar(&fps, "fps", 120, "Engine iterations per second (0 = unpaced).")
	flag.Parse()

	if err := run(cfg, appCfg, fps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg hal.PeriphConfig, appCfg app.Config, fps int) error {
	h, closer, err := hal.NewPeriph(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	h.Logger().WriteLineString("tivagc " + buildinfo.Long())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	step := app.NewWithConfig(h, appCfg)
	var pace <-chan time.Time
	if fps > 0 {
		t := time.NewTicker(time.Second / time.Duration(fps))
		defer t.Stop()
		pace = t.C
	}
	for {
		if err := step(); err != nil {
			return err
		}
		if pace == nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-pace:
		}
	}
}
