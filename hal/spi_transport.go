package hal

import (
	"time"

	"tinygo.org/x/drivers"
)

// SPITransport drives the panel over any TinyGo SPI bus with separate
// data/command, chip-select and reset lines. CS and RST are optional.
type SPITransport struct {
	bus drivers.SPI
	dc  OutputPin
	cs  OutputPin
	rst OutputPin

	// ResetPulse is how long RST is held low and then allowed to recover.
	ResetPulse time.Duration
	sleep      func(time.Duration)

	one [1]byte
}

func NewSPITransport(bus drivers.SPI, dc, cs, rst OutputPin) *SPITransport {
	setPin(cs, true)
	setPin(dc, true)
	setPin(rst, true)
	return &SPITransport{
		bus:        bus,
		dc:         dc,
		cs:         cs,
		rst:        rst,
		ResetPulse: 150 * time.Millisecond,
		sleep:      time.Sleep,
	}
}

func (t *SPITransport) Select(on bool) error {
	setPin(t.cs, !on)
	return nil
}

func (t *SPITransport) Command(op byte) error {
	t.dc.Low()
	t.one[0] = op
	return t.bus.Tx(t.one[:], nil)
}

func (t *SPITransport) Data(b byte) error {
	t.dc.High()
	t.one[0] = b
	return t.bus.Tx(t.one[:], nil)
}

func (t *SPITransport) DataBytes(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	t.dc.High()
	return t.bus.Tx(buf, nil)
}

// Reset pulses RST: high, low, high, waiting ResetPulse after each edge.
func (t *SPITransport) Reset() error {
	if t.rst == nil {
		return nil
	}
	t.rst.High()
	t.sleep(t.ResetPulse)
	t.rst.Low()
	t.sleep(t.ResetPulse)
	t.rst.High()
	t.sleep(t.ResetPulse)
	return nil
}
