//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// PeriphConfig names the lines of a panel wired to a Linux board.
type PeriphConfig struct {
	SPI  string // spireg name; "" opens the first port
	Freq physic.Frequency

	DC, CS, RST string

	// Buttons are GPIO names for SW1, SW2 and SEL; empty entries are
	// unwired. Evdev, when set, is a device path or name that supplies
	// buttons and the stick instead.
	Buttons [NumButtons]string
	Evdev   string
}

type periphHAL struct {
	logger *hostLogger
	disp   *PeriphTransport
	in     Input
	t      *tickerTime

	closers []io.Closer
}

// NewPeriph initialises the periph host drivers and opens the panel bus.
// The returned HAL must be closed to release the SPI port.
func NewPeriph(cfg PeriphConfig) (HAL, io.Closer, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("periph: host init: %w", err)
	}

	h := &periphHAL{logger: &hostLogger{w: os.Stdout}}
	fail := func(err error) (HAL, io.Closer, error) {
		h.Close()
		return nil, nil, err
	}

	port, err := spireg.Open(cfg.SPI)
	if err != nil {
		return fail(fmt.Errorf("periph: open SPI %q: %w", cfg.SPI, err))
	}
	h.closers = append(h.closers, port)

	dc, err := outPin(cfg.DC)
	if err != nil {
		return fail(err)
	}
	if dc == nil {
		return fail(errors.New("periph: D/C pin is required"))
	}
	cs, err := outPin(cfg.CS)
	if err != nil {
		return fail(err)
	}
	rst, err := outPin(cfg.RST)
	if err != nil {
		return fail(err)
	}
	h.disp, err = NewPeriphTransport(port, dc, &PeriphOpts{Freq: cfg.Freq, CS: cs, RST: rst})
	if err != nil {
		return fail(err)
	}

	if cfg.Evdev != "" {
		ev, err := OpenEvdev(cfg.Evdev)
		if err != nil {
			return fail(err)
		}
		h.closers = append(h.closers, ev)
		h.in = ev
	} else {
		var pins [NumButtons]gpio.PinIn
		for id, name := range cfg.Buttons {
			if name == "" {
				continue
			}
			p := gpioreg.ByName(name)
			if p == nil {
				return fail(fmt.Errorf("periph: no GPIO %q for %s", name, ButtonID(id)))
			}
			pins[id] = p
		}
		b, err := NewPeriphButtons(pins)
		if err != nil {
			return fail(err)
		}
		h.in = CombineInput(b, nil)
	}

	h.t = newTickerTime()
	h.closers = append(h.closers, h.t)
	return h, h, nil
}

func outPin(name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("periph: no GPIO %q", name)
	}
	return p, nil
}

func (h *periphHAL) Logger() Logger   { return h.logger }
func (h *periphHAL) Display() Display { return h.disp }
func (h *periphHAL) Input() Input     { return h.in }
func (h *periphHAL) Time() Time       { return h.t }

func (h *periphHAL) Close() error {
	var errs []error
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	h.closers = nil
	return errors.Join(errs...)
}
