package hal

import (
	"image"
	"image/color"
	"sync"
)

// ST7735S opcodes understood by Panel.
const (
	opSWRESET = 0x01
	opSLPIN   = 0x10
	opSLPOUT  = 0x11
	opINVOFF  = 0x20
	opINVON   = 0x21
	opDISPOFF = 0x28
	opDISPON  = 0x29
	opCASET   = 0x2A
	opRASET   = 0x2B
	opRAMWR   = 0x2C
	opMADCTL  = 0x36
	opCOLMOD  = 0x3A
)

// PanelStats counts traffic seen by a Panel since the last reset.
type PanelStats struct {
	Commands    int
	DataBytes   int
	PixelWrites int
	Dropped     int // bytes sent while the panel was not selected
}

// Panel is an in-memory ST7735S-style controller. It decodes the
// command/data stream (address window, RAM write, inversion, sleep and
// display on/off) into an RGB 6-6-6 frame so the console can run without
// hardware. It implements Display.
type Panel struct {
	mu sync.Mutex

	w, h   int
	offset image.Point

	ram []byte // 3 bytes per pixel, as sent on the wire

	selected bool
	op       byte
	args     []byte

	xs, xe, ys, ye int
	cx, cy         int
	px             [3]byte
	pn             int

	madctl   byte
	colmod   byte
	inverted bool
	sleeping bool
	on       bool

	stats PanelStats
}

// NewPanel returns a powered-off panel with a w x h visible area.
func NewPanel(w, h int) *Panel {
	p := &Panel{w: w, h: h}
	p.ram = make([]byte, w*h*3)
	p.reset()
	return p
}

// SetOffset sets the RAM coordinate of the visible area's top-left pixel.
func (p *Panel) SetOffset(col, row int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.offset = image.Pt(col, row)
}

func (p *Panel) Bounds() image.Rectangle { return image.Rect(0, 0, p.w, p.h) }

func (p *Panel) reset() {
	for i := range p.ram {
		p.ram[i] = 0
	}
	p.op = 0
	p.args = p.args[:0]
	p.xs, p.xe = 0, p.w-1
	p.ys, p.ye = 0, p.h-1
	p.cx, p.cy = 0, 0
	p.pn = 0
	p.madctl = 0
	p.colmod = 6
	p.inverted = false
	p.sleeping = true
	p.on = false
	p.stats = PanelStats{}
}

func (p *Panel) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

func (p *Panel) Select(on bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = on
	return nil
}

func (p *Panel) Command(op byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.selected {
		p.stats.Dropped++
		return nil
	}
	p.stats.Commands++
	p.op = op
	p.args = p.args[:0]
	p.pn = 0

	switch op {
	case opSWRESET:
		sel := p.selected
		p.reset()
		p.selected = sel
	case opSLPIN:
		p.sleeping = true
	case opSLPOUT:
		p.sleeping = false
	case opINVOFF:
		p.inverted = false
	case opINVON:
		p.inverted = true
	case opDISPOFF:
		p.on = false
	case opDISPON:
		p.on = true
	case opRAMWR:
		p.cx, p.cy = p.xs, p.ys
	}
	return nil
}

func (p *Panel) Data(b byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data(b)
	return nil
}

func (p *Panel) DataBytes(buf []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range buf {
		p.data(b)
	}
	return nil
}

func (p *Panel) data(b byte) {
	if !p.selected {
		p.stats.Dropped++
		return
	}
	p.stats.DataBytes++

	switch p.op {
	case opCASET, opRASET:
		p.args = append(p.args, b)
		if len(p.args) < 4 {
			return
		}
		start := int(p.args[0])<<8 | int(p.args[1])
		end := int(p.args[2])<<8 | int(p.args[3])
		if p.op == opCASET {
			p.xs, p.xe = start, end
		} else {
			p.ys, p.ye = start, end
		}
		p.args = p.args[:0]
	case opMADCTL:
		p.madctl = b
	case opCOLMOD:
		p.colmod = b & 0x07
	case opRAMWR:
		p.px[p.pn] = b
		p.pn++
		if p.pn < 3 {
			return
		}
		p.pn = 0
		p.writePixel()
	}
}

func (p *Panel) writePixel() {
	p.stats.PixelWrites++
	x := p.cx - p.offset.X
	y := p.cy - p.offset.Y
	if x >= 0 && x < p.w && y >= 0 && y < p.h {
		i := (y*p.w + x) * 3
		p.ram[i] = p.px[0] &^ 0x03
		p.ram[i+1] = p.px[1] &^ 0x03
		p.ram[i+2] = p.px[2] &^ 0x03
	}

	// Row-major walk inside the window, wrapping back to the start.
	p.cx++
	if p.cx > p.xe {
		p.cx = p.xs
		p.cy++
		if p.cy > p.ye {
			p.cy = p.ys
		}
	}
}

// Stats returns the traffic counters.
func (p *Panel) Stats() PanelStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// ResetStats zeroes the traffic counters without touching the frame.
func (p *Panel) ResetStats() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats = PanelStats{}
}

// Window returns the current column/row address window in RAM coordinates.
func (p *Panel) Window() image.Rectangle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return image.Rect(p.xs, p.ys, p.xe+1, p.ye+1)
}

// MemoryAccess returns the last MADCTL byte.
func (p *Panel) MemoryAccess() byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.madctl
}

// PixelFormat returns the last COLMOD interface format.
func (p *Panel) PixelFormat() byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.colmod
}

func (p *Panel) Inverted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inverted
}

// On reports whether the panel is awake with the display enabled.
func (p *Panel) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on && !p.sleeping
}

// RGB returns the 6-bit channels stored at (x, y) in RAM, ignoring inversion.
func (p *Panel) RGB(x, y int) (r, g, b uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return 0, 0, 0
	}
	i := (y*p.w + x) * 3
	return p.ram[i] >> 2, p.ram[i+1] >> 2, p.ram[i+2] >> 2
}

// Snapshot renders what the glass currently shows: black while asleep or
// off, channels inverted while INVON is active.
func (p *Panel) Snapshot() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	p.SnapshotInto(img)
	return img
}

// SnapshotInto renders into dst, which must have the panel's bounds.
func (p *Panel) SnapshotInto(dst *image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lit := p.on && !p.sleeping
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			c := color.RGBA{A: 0xFF}
			if lit {
				i := (y*p.w + x) * 3
				c.R = widen6(p.ram[i]>>2, p.inverted)
				c.G = widen6(p.ram[i+1]>>2, p.inverted)
				c.B = widen6(p.ram[i+2]>>2, p.inverted)
			}
			dst.SetRGBA(x, y, c)
		}
	}
}
