//go:build tinygo && baremetal

package hal

import (
	"machine"
)

// Board wiring for a Pico driving the 1.44" ST7735S module.
const (
	pinSCK = machine.GP18
	pinSDO = machine.GP19
	pinCS  = machine.GP17
	pinDC  = machine.GP20
	pinRST = machine.GP21

	pinSW1 = machine.GP2
	pinSW2 = machine.GP3
	pinSEL = machine.GP4

	pinJoyX = machine.ADC0
	pinJoyY = machine.ADC1
)

type tinyGoHAL struct {
	logger *uartLogger
	disp   *SPITransport
	in     Input
	t      *tickerTime
}

// New returns the board HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	spi := machine.SPI0
	spi.Configure(machine.SPIConfig{
		Frequency: 15_000_000,
		SCK:       pinSCK,
		SDO:       pinSDO,
		Mode:      0,
	})
	for _, p := range []machine.Pin{pinCS, pinDC, pinRST} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}

	var buttons PinButtons
	for id, p := range [NumButtons]machine.Pin{pinSW1, pinSW2, pinSEL} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		buttons[id] = ActiveLow(p)
	}

	machine.InitADC()
	stick := &adcStick{x: machine.ADC{Pin: pinJoyX}, y: machine.ADC{Pin: pinJoyY}}
	stick.x.Configure(machine.ADCConfig{})
	stick.y.Configure(machine.ADCConfig{})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		disp:   NewSPITransport(spi, pinDC, pinCS, pinRST),
		in:     CombineInput(buttons, stick),
		t:      newTickerTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) Input() Input     { return h.in }
func (h *tinyGoHAL) Time() Time       { return h.t }

// adcStick reads the stick through the 12-bit converter. TinyGo scales
// samples to 16 bits.
type adcStick struct {
	x, y machine.ADC
}

func (s *adcStick) Joystick() (x, y uint16) {
	return s.x.Get() >> 4, s.y.Get() >> 4
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
