package lcd

import "image"

// Triangle outlines a, b, c.
func (d *Device) Triangle(a, b, c image.Point, stroke int, col Color) {
	d.Line(a.X, a.Y, b.X, b.Y, stroke, col)
	d.Line(b.X, b.Y, c.X, c.Y, stroke, col)
	d.Line(c.X, c.Y, a.X, a.Y, stroke, col)
}

// FillTriangle fills a, b, c with one HLine per scanline.
func (d *Device) FillTriangle(a, b, c image.Point, col Color) {
	eachTriangleSpan(a, b, c, func(x1, x2, y int) {
		d.HLine(x1, x2, y, 1, col)
	})
}

// eachTriangleSpan splits the triangle at the middle vertex into a
// flat-bottom and a flat-top half and reports every row exactly once.
func eachTriangleSpan(a, b, c image.Point, fn func(x1, x2, y int)) {
	top, mid, bot := sortByY(a, b, c)

	if top.Y == bot.Y {
		lo, hi := top.X, top.X
		for _, p := range [...]image.Point{mid, bot} {
			lo, hi = min(lo, p.X), max(hi, p.X)
		}
		fn(lo, hi, top.Y)
		return
	}

	aux := image.Point{
		X: top.X + int(float64(mid.Y-top.Y)/float64(bot.Y-top.Y)*float64(bot.X-top.X)),
		Y: mid.Y,
	}

	start := top.Y
	if mid.Y > top.Y {
		for y := top.Y; y <= mid.Y; y++ {
			fn(edgeX(top, mid, y), edgeX(top, aux, y), y)
		}
		start = mid.Y + 1
	}
	for y := start; y <= bot.Y; y++ {
		fn(edgeX(mid, bot, y), edgeX(aux, bot, y), y)
	}
}

func sortByY(a, b, c image.Point) (image.Point, image.Point, image.Point) {
	if b.Y < a.Y {
		a, b = b, a
	}
	if c.Y < b.Y {
		b, c = c, b
	}
	if b.Y < a.Y {
		a, b = b, a
	}
	return a, b, c
}

// edgeX is the x-intercept of p-q at row y, stepping by the inverse slope.
func edgeX(p, q image.Point, y int) int {
	if p.Y == q.Y {
		return p.X
	}
	inv := float64(q.X-p.X) / float64(q.Y-p.Y)
	return p.X + int(float64(y-p.Y)*inv)
}

// Polygon outlines pts, closing the shape when it has three or more
// vertices.
func (d *Device) Polygon(pts []image.Point, stroke int, c Color) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		d.Line(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, stroke, c)
	}
	if len(pts) > 2 {
		last := pts[len(pts)-1]
		d.Line(last.X, last.Y, pts[0].X, pts[0].Y, stroke, c)
	}
}

// Circle outlines a circle of radius r around (x0,y0). A stroke of n
// draws n concentric rings inward from r.
func (d *Device) Circle(x0, y0, r, stroke int, c Color) {
	if r <= 0 || stroke <= 0 {
		return
	}
	for k := 0; k < stroke && r-k > 0; k++ {
		eachCircleOctant(r-k, func(x, y int) {
			d.DrawPixel(x0+x, y0+y, c)
			d.DrawPixel(x0-x, y0+y, c)
			d.DrawPixel(x0+x, y0-y, c)
			d.DrawPixel(x0-x, y0-y, c)
			d.DrawPixel(x0+y, y0+x, c)
			d.DrawPixel(x0-y, y0+x, c)
			d.DrawPixel(x0+y, y0-x, c)
			d.DrawPixel(x0-y, y0-x, c)
		})
	}
}

// FillCircle fills a disc of radius r with mirrored horizontal spans.
func (d *Device) FillCircle(x0, y0, r int, c Color) {
	if r <= 0 {
		return
	}
	eachCircleOctant(r, func(x, y int) {
		d.HLine(x0-x, x0+x, y0+y, 1, c)
		d.HLine(x0-x, x0+x, y0-y, 1, c)
		d.HLine(x0-y, x0+y, y0+x, 1, c)
		d.HLine(x0-y, x0+y, y0-x, 1, c)
	})
}

// eachCircleOctant walks the octant from (0,r) to the diagonal. At each
// column it keeps y or drops to y-1, whichever lands closer to r².
func eachCircleOctant(r int, fn func(x, y int)) {
	x, y := 0, r
	rr := r * r
	for x <= y {
		fn(x, y)
		x++
		if abs(x*x+(y-1)*(y-1)-rr) < abs(x*x+y*y-rr) {
			y--
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
