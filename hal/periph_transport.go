//go:build !tinygo

package hal

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// PeriphOpts configures a PeriphTransport.
type PeriphOpts struct {
	// Bus clock; 0 means 15MHz, the ST7735S write-cycle limit.
	Freq physic.Frequency

	CS  gpio.PinOut // optional when the SPI port drives CS itself
	RST gpio.PinOut // optional
}

// PeriphTransport drives the panel through periph.io on Linux boards.
type PeriphTransport struct {
	c   conn.Conn
	dc  gpio.PinOut
	cs  gpio.PinOut
	rst gpio.PinOut

	sleep func(time.Duration)
	one   [1]byte
}

// NewPeriphTransport connects p in SPI mode 0 with 8-bit words.
func NewPeriphTransport(p spi.Port, dc gpio.PinOut, opts *PeriphOpts) (*PeriphTransport, error) {
	if opts == nil {
		opts = &PeriphOpts{}
	}
	if dc == nil {
		return nil, fmt.Errorf("periph transport: D/C pin is required")
	}
	freq := opts.Freq
	if freq == 0 {
		freq = 15 * physic.MegaHertz
	}

	c, err := p.Connect(freq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("periph transport: connect: %w", err)
	}

	t := &PeriphTransport{c: c, dc: dc, cs: opts.CS, rst: opts.RST, sleep: time.Sleep}
	if t.cs != nil {
		if err := t.cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("periph transport: CS idle: %w", err)
		}
	}
	return t, nil
}

func (t *PeriphTransport) Select(on bool) error {
	if t.cs == nil {
		return nil
	}
	return t.cs.Out(gpio.Level(!on))
}

func (t *PeriphTransport) Command(op byte) error {
	if err := t.dc.Out(gpio.Low); err != nil {
		return err
	}
	t.one[0] = op
	return t.c.Tx(t.one[:], nil)
}

func (t *PeriphTransport) Data(b byte) error {
	t.one[0] = b
	return t.DataBytes(t.one[:])
}

func (t *PeriphTransport) DataBytes(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := t.dc.Out(gpio.High); err != nil {
		return err
	}
	return t.c.Tx(buf, nil)
}

func (t *PeriphTransport) Reset() error {
	if t.rst == nil {
		return nil
	}
	for _, l := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err := t.rst.Out(l); err != nil {
			return fmt.Errorf("periph transport: RST %s: %w", l, err)
		}
		t.sleep(150 * time.Millisecond)
	}
	return nil
}
