// Package lcd drives an ST7735S-class colour panel over a command/data
// transport and rasterizes primitives straight into panel RAM. There is
// no local framebuffer: every primitive becomes address-window commands
// followed by a pixel stream.
//
// Coordinates are panel pixels and may be out of range; primitives clip
// rather than fail. Rectangle extents are inclusive: FillRect(x, y, w, h)
// paints columns x..x+w and rows y..y+h.
package lcd

import (
	"errors"
	"fmt"
	"image"
	"time"

	"tivagc/hal"
)

var ErrNoTransport = errors.New("lcd: no transport")

// Sleeper blocks for a fixed delay. hal.Time satisfies it.
type Sleeper interface {
	Sleep(d time.Duration)
}

// StrokePolicy selects where the extra parallel lines of a thick Line go.
type StrokePolicy uint8

const (
	// StrokeForward draws offsets 0..stroke-1, so thick lines grow to the
	// right (steep) or downward (shallow) of the ideal line.
	StrokeForward StrokePolicy = iota
	// StrokeCentered spreads the offsets around the ideal line, the extra
	// pixel of an even stroke going to the higher coordinate.
	StrokeCentered
)

func (p StrokePolicy) span(stroke int) (lo, hi int) {
	if p == StrokeCentered {
		return -((stroke - 1) >> 1), stroke >> 1
	}
	return 0, stroke - 1
}

type Config struct {
	Profile *Profile // nil means ST7735S()
	Stroke  StrokePolicy
}

// Settings is the display state the rasterizer reads back.
type Settings struct {
	Inversion    bool
	ColorMode    byte
	MemoryAccess byte
	Background   Color
}

// Device is one panel. It is not safe for concurrent use.
type Device struct {
	bus   hal.Display
	clock Sleeper
	prof  *Profile
	cfg   Config

	w, h     int
	settings Settings

	err error
	buf [pushChunk * 3]byte
}

const pushChunk = 64

// New returns a Device for the panel behind bus. clock may be nil when the
// profile has no delays worth honouring (tests).
func New(bus hal.Display, clock Sleeper, cfg *Config) (*Device, error) {
	if bus == nil {
		return nil, ErrNoTransport
	}
	d := &Device{bus: bus, clock: clock}
	if cfg != nil {
		d.cfg = *cfg
	}
	d.prof = d.cfg.Profile
	if d.prof == nil {
		d.prof = ST7735S()
	}
	d.w, d.h = d.prof.Width, d.prof.Height
	if d.w <= 0 || d.h <= 0 {
		return nil, fmt.Errorf("lcd: invalid panel size %dx%d", d.w, d.h)
	}
	return d, nil
}

// Init selects the panel, pulses reset and replays the profile's init
// sequence. The background becomes black.
func (d *Device) Init() error {
	d.err = nil
	d.settings = Settings{}
	if err := d.bus.Select(true); err != nil {
		return fmt.Errorf("lcd: select: %w", err)
	}
	if err := d.bus.Reset(); err != nil {
		return fmt.Errorf("lcd: reset: %w", err)
	}
	for _, s := range d.prof.Init {
		d.command(s.Cmd)
		if len(s.Data) > 0 {
			d.data(s.Data...)
		}
		d.track(s.Cmd, s.Data)
		d.sleep(s.Delay)
	}
	d.settings.Background = Black
	return d.err
}

func (d *Device) track(cmd byte, data []byte) {
	switch cmd {
	case CmdINVON:
		d.settings.Inversion = true
	case CmdINVOFF:
		d.settings.Inversion = false
	case CmdMADCTL:
		if len(data) > 0 {
			d.settings.MemoryAccess = data[0]
		}
	case CmdCOLMOD:
		if len(data) > 0 {
			d.settings.ColorMode = data[0]
		}
	}
}

func (d *Device) sleep(t time.Duration) {
	if t > 0 && d.clock != nil {
		d.clock.Sleep(t)
	}
}

// Err returns the first transport error. Once set, further traffic is
// dropped until the next Init.
func (d *Device) Err() error { return d.err }

func (d *Device) command(op byte) {
	if d.err != nil {
		return
	}
	if err := d.bus.Command(op); err != nil {
		d.err = fmt.Errorf("lcd: command %#02x: %w", op, err)
	}
}

func (d *Device) data(b ...byte) {
	if d.err != nil {
		return
	}
	var err error
	if len(b) == 1 {
		err = d.bus.Data(b[0])
	} else {
		err = d.bus.DataBytes(b)
	}
	if err != nil {
		d.err = fmt.Errorf("lcd: data: %w", err)
	}
}

func (d *Device) Size() (w, h int)               { return d.w, d.h }
func (d *Device) Bounds() image.Rectangle        { return image.Rect(0, 0, d.w, d.h) }
func (d *Device) Settings() Settings             { return d.settings }
func (d *Device) SetBackground(c Color)          { d.settings.Background = c }
func (d *Device) SetStrokePolicy(p StrokePolicy) { d.cfg.Stroke = p }

func (d *Device) SetInversion(on bool) {
	if on {
		d.command(CmdINVON)
	} else {
		d.command(CmdINVOFF)
	}
	d.settings.Inversion = on
}

func (d *Device) SetMemoryAccess(madctl byte) {
	d.command(CmdMADCTL)
	d.data(madctl)
	d.settings.MemoryAccess = madctl
}

// Sleep puts the panel into (or wakes it from) sleep mode. Waking needs
// 120ms before the next command.
func (d *Device) Sleep(on bool) {
	if on {
		d.command(CmdSLPIN)
		return
	}
	d.command(CmdSLPOUT)
	d.sleep(120 * time.Millisecond)
}

func (d *Device) DisplayOn(on bool) {
	if on {
		d.command(CmdDISPON)
	} else {
		d.command(CmdDISPOFF)
	}
}

// SetArea addresses the inclusive window [colStart,colEnd]x[rowStart,rowEnd].
// Operands are swapped into order and clipped to the panel.
func (d *Device) SetArea(colStart, rowStart, colEnd, rowEnd int) {
	if colStart > colEnd {
		colStart, colEnd = colEnd, colStart
	}
	if rowStart > rowEnd {
		rowStart, rowEnd = rowEnd, rowStart
	}
	colStart, colEnd = clamp(colStart, 0, d.w-1), clamp(colEnd, 0, d.w-1)
	rowStart, rowEnd = clamp(rowStart, 0, d.h-1), clamp(rowEnd, 0, d.h-1)

	colStart += d.prof.ColumnOffset
	colEnd += d.prof.ColumnOffset
	rowStart += d.prof.RowOffset
	rowEnd += d.prof.RowOffset

	d.command(CmdCASET)
	d.data(byte(colStart>>8), byte(colStart), byte(colEnd>>8), byte(colEnd))
	d.command(CmdRASET)
	d.data(byte(rowStart>>8), byte(rowStart), byte(rowEnd>>8), byte(rowEnd))
}

// ActivateWrite starts a RAM write into the current window.
func (d *Device) ActivateWrite() { d.command(CmdRAMWR) }

// PushPixel streams one pixel, each channel left-aligned in its byte.
func (d *Device) PushPixel(c Color) {
	d.data(c.R<<2, c.G<<2, c.B<<2)
}

// PushPixels streams n pixels of c.
func (d *Device) PushPixels(c Color, n int) {
	if n <= 0 {
		return
	}
	r, g, b := c.R<<2, c.G<<2, c.B<<2
	fill := n
	if fill > pushChunk {
		fill = pushChunk
	}
	for i := 0; i < fill; i++ {
		d.buf[i*3], d.buf[i*3+1], d.buf[i*3+2] = r, g, b
	}
	for n > 0 {
		k := n
		if k > pushChunk {
			k = pushChunk
		}
		d.data(d.buf[:k*3]...)
		n -= k
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
