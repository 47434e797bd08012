//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"tivagc/app"
	"tivagc/hal"
	"tivagc/internal/buildinfo"
	"tivagc/internal/mirror"
	"tivagc/lcd"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		appCfg   app.Config
		httpAddr string
		centered bool
		version  bool
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Terminal, "term", false, "Read controls from the terminal in headless mode.")
	flag.StringVar(&httpAddr, "http", "", "Serve the panel on this address, e.g. :8081.")
	flag.StringVar(&appCfg.Splash, "splash", "", `Boot title ("-" skips the splash).`)
	flag.Int64Var(&appCfg.Seed, "seed", 0, "Fixed PRNG seed (0 = joystick noise).")
	flag.BoolVar(&centered, "centered-stroke", false, "Centre thick lines on their ideal path.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}
	if centered {
		appCfg.Stroke = lcd.StrokeCentered
	}

	newApp := func(h hal.HAL) func() error {
		if httpAddr != "" {
			startMirror(h, httpAddr)
		}
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func startMirror(h hal.HAL, addr string) {
	p, ok := hal.PanelOf(h)
	if !ok {
		return
	}
	srv := mirror.New(p)
	go func() {
		if err := srv.Listen(addr); err != nil {
			fmt.Fprintln(os.Stderr, "mirror:", err)
		}
	}()
	h.Logger().WriteLineString("mirror: serving on " + addr)
}
