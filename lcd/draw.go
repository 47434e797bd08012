package lcd

// DrawPixel writes one pixel. It costs a full window setup, so prefer the
// span primitives for anything larger than a point.
func (d *Device) DrawPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.SetArea(x, y, x, y)
	d.ActivateWrite()
	d.PushPixel(c)
}

// FillRect paints the inclusive rectangle [x,x+w]x[y,y+h], i.e. w+1
// columns by h+1 rows, clipped to the panel.
func (d *Device) FillRect(x, y, w, h int, c Color) {
	if w < 0 || h < 0 {
		return
	}
	x0, y0, x1, y1 := x, y, x+w, y+h
	if x1 < 0 || y1 < 0 || x0 >= d.w || y0 >= d.h {
		return
	}
	x0, x1 = clamp(x0, 0, d.w-1), clamp(x1, 0, d.w-1)
	y0, y1 = clamp(y0, 0, d.h-1), clamp(y1, 0, d.h-1)

	d.SetArea(x0, y0, x1, y1)
	d.ActivateWrite()
	d.PushPixels(c, (x1-x0+1)*(y1-y0+1))
}

// Clear fills the panel with the background colour.
func (d *Device) Clear() {
	d.FillRect(0, 0, d.w-1, d.h-1, d.settings.Background)
}

// VLine draws x from y1 to y2 inclusive, stroke pixels wide. An even
// stroke puts the extra column to the right.
func (d *Device) VLine(x, y1, y2, stroke int, c Color) {
	if stroke <= 0 {
		return
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	d.FillRect(x-((stroke-1)>>1), y1, stroke-1, y2-y1, c)
}

// HLine draws row y from x1 to x2 inclusive, stroke pixels tall. An even
// stroke puts the extra row below.
func (d *Device) HLine(x1, x2, y, stroke int, c Color) {
	if stroke <= 0 {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	d.FillRect(x1, y-((stroke-1)>>1), x2-x1, stroke-1, c)
}

type octant uint8

// Octants by slope m: steep up m > 1, shallow up 0 < m <= 1, shallow
// down -1 < m <= 0, steep down m <= -1.
const (
	octSteepUp octant = iota
	octShallowUp
	octShallowDown
	octSteepDown
)

func (o octant) steep() bool { return o == octSteepUp || o == octSteepDown }

// classify expects x1 < x2.
func classify(x1, y1, x2, y2 int) octant {
	m := float64(y2-y1) / float64(x2-x1)
	switch {
	case m > 1:
		return octSteepUp
	case m > 0:
		return octShallowUp
	case m > -1:
		return octShallowDown
	default:
		return octSteepDown
	}
}

// Line draws from (x1,y1) to (x2,y2). Axis-aligned segments take the
// VLine/HLine fast path; others are stepped one pixel at a time along the
// driving axis. Extra stroke is added as parallel copies shifted along x
// for steep lines and along y for shallow ones, per the device's
// StrokePolicy.
func (d *Device) Line(x1, y1, x2, y2, stroke int, c Color) {
	if stroke <= 0 {
		return
	}
	if x1 == x2 {
		d.VLine(x1, y1, y2, stroke, c)
		return
	}
	if y1 == y2 {
		d.HLine(x1, x2, y1, stroke, c)
		return
	}
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	oct := classify(x1, y1, x2, y2)
	lo, hi := d.cfg.Stroke.span(stroke)
	for off := lo; off <= hi; off++ {
		if oct.steep() {
			d.segment(x1+off, y1, x2+off, y2, true, c)
		} else {
			d.segment(x1, y1+off, x2, y2+off, false, c)
		}
	}
}

func (d *Device) segment(x1, y1, x2, y2 int, steep bool, c Color) {
	eachLinePoint(x1, y1, x2, y2, steep, func(x, y int) {
		d.DrawPixel(x, y, c)
	})
}

// eachLinePoint visits the points of a 1-pixel line with x1 < x2. The
// dependent coordinate is the exact slope truncated toward the start.
func eachLinePoint(x1, y1, x2, y2 int, steep bool, fn func(x, y int)) {
	dx, dy := x2-x1, y2-y1
	if !steep {
		for i := 0; i <= dx; i++ {
			fn(x1+i, y1+dy*i/dx)
		}
		return
	}
	n, sy := dy, 1
	if n < 0 {
		n, sy = -n, -1
	}
	for i := 0; i <= n; i++ {
		fn(x1+dx*i/n, y1+sy*i)
	}
}

// Rect outlines the inclusive rectangle [x,x+w]x[y,y+h] with four edges
// of the given stroke.
func (d *Device) Rect(x, y, w, h, stroke int, c Color) {
	if w <= 0 || h <= 0 || stroke <= 0 {
		return
	}
	d.HLine(x, x+w, y, stroke, c)
	d.HLine(x, x+w, y+h, stroke, c)
	d.VLine(x, y, y+h, stroke, c)
	d.VLine(x+w, y, y+h, stroke, c)
}
