package lcd

import (
	"image"
	"math"
	"reflect"
	"testing"
)

func lit(p interface{ RGB(x, y int) (r, g, b uint8) }, x, y int) bool {
	r, g, b := p.RGB(x, y)
	return r|g|b != 0
}

func TestFillRectInclusive(t *testing.T) {
	cases := []struct {
		x, y, w, h int
	}{
		{0, 0, 0, 0},
		{10, 20, 5, 3},
		{0, 0, 131, 131},
		{100, 7, 31, 0},
	}
	for _, tc := range cases {
		d, p := newOnPanel(t)
		d.FillRect(tc.x, tc.y, tc.w, tc.h, White)

		st := p.Stats()
		if want := (tc.w + 1) * (tc.h + 1); st.PixelWrites != want {
			t.Fatalf("%+v: pixel writes = %d, want %d", tc, st.PixelWrites, want)
		}
		if st.Commands != 3 {
			t.Fatalf("%+v: commands = %d, want one area pair and RAMWR", tc, st.Commands)
		}
		if want := image.Rect(tc.x, tc.y, tc.x+tc.w+1, tc.y+tc.h+1); p.Window() != want {
			t.Fatalf("%+v: window = %v, want %v", tc, p.Window(), want)
		}
		if !lit(p, tc.x+tc.w, tc.y+tc.h) {
			t.Fatalf("%+v: far corner not painted", tc)
		}
	}
}

func TestFillRectClips(t *testing.T) {
	d, p := newOnPanel(t)
	d.FillRect(-5, -5, 10, 10, White)
	if st := p.Stats(); st.PixelWrites != 36 {
		t.Fatalf("pixel writes = %d", st.PixelWrites)
	}
	if p.Window() != image.Rect(0, 0, 6, 6) {
		t.Fatalf("window = %v", p.Window())
	}

	p.ResetStats()
	d.FillRect(200, 0, 5, 5, White)
	d.FillRect(0, -20, 5, 5, White)
	d.FillRect(3, 3, -1, 4, White)
	if st := p.Stats(); st.Commands != 0 || st.DataBytes != 0 {
		t.Fatalf("off-screen fills sent %+v", st)
	}
}

func TestDrawPixelOffscreenIsSilent(t *testing.T) {
	d, p := newOnPanel(t)
	for _, pt := range []image.Point{{-1, 0}, {0, -1}, {132, 5}, {5, 132}} {
		d.DrawPixel(pt.X, pt.Y, White)
	}
	if st := p.Stats(); st.Commands != 0 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestClearUsesBackground(t *testing.T) {
	d, p := newOnPanel(t)
	d.SetBackground(Blue)
	d.Clear()
	if st := p.Stats(); st.PixelWrites != 132*132 {
		t.Fatalf("pixel writes = %d", st.PixelWrites)
	}
	if r, g, b := p.RGB(131, 131); r != 0 || g != 0 || b != 0x3F {
		t.Fatalf("corner = %d,%d,%d", r, g, b)
	}
}

func TestZeroStrokeIsSilent(t *testing.T) {
	d, p := newOnPanel(t)
	d.VLine(10, 0, 50, 0, White)
	d.HLine(0, 50, 10, 0, White)
	d.Line(0, 0, 50, 20, 0, White)
	d.Line(5, 0, 5, 20, 0, White)
	d.Rect(1, 1, 10, 10, 0, White)
	d.Circle(60, 60, 10, 0, White)
	d.Triangle(image.Pt(0, 0), image.Pt(9, 3), image.Pt(4, 9), 0, White)
	if st := p.Stats(); st.Commands != 0 || st.DataBytes != 0 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestLineStrokeCentering(t *testing.T) {
	d, p := newOnPanel(t)
	d.VLine(20, 5, 10, 4, White)
	// stroke 4 covers x-1..x+2
	for x, want := range map[int]bool{18: false, 19: true, 20: true, 22: true, 23: false} {
		if lit(p, x, 7) != want {
			t.Fatalf("x=%d lit=%v", x, !want)
		}
	}
	d.HLine(40, 30, 50, 3, White)
	for y, want := range map[int]bool{48: false, 49: true, 51: true, 52: false} {
		if lit(p, 35, y) != want {
			t.Fatalf("y=%d lit=%v", y, !want)
		}
	}
}

func TestAxisAlignedLineMatchesFastPath(t *testing.T) {
	cases := []struct {
		name string
		line func(*Device)
		fast func(*Device)
	}{
		{"vertical", func(d *Device) { d.Line(12, 40, 12, 3, 3, Red) }, func(d *Device) { d.VLine(12, 40, 3, 3, Red) }},
		{"horizontal", func(d *Device) { d.Line(90, 7, 4, 7, 2, Red) }, func(d *Device) { d.HLine(90, 4, 7, 2, Red) }},
		{"offscreen", func(d *Device) { d.Line(-3, -9, -3, 140, 5, Red) }, func(d *Device) { d.VLine(-3, -9, 140, 5, Red) }},
	}
	for _, tc := range cases {
		a, ra := newRecorded(t, nil)
		b, rb := newRecorded(t, nil)
		tc.line(a)
		tc.fast(b)
		if !reflect.DeepEqual(ra.ops, rb.ops) {
			t.Fatalf("%s: line and fast path differ", tc.name)
		}
	}
}

func TestClassifyExactlyOneOctant(t *testing.T) {
	cases := []struct {
		x2, y2 int
		want   octant
	}{
		{1, 5, octSteepUp},
		{5, 5, octShallowUp},
		{5, 1, octShallowUp},
		{5, -1, octShallowDown},
		{5, -5, octSteepDown},
		{1, -5, octSteepDown},
	}
	for _, tc := range cases {
		if got := classify(0, 0, tc.x2, tc.y2); got != tc.want {
			t.Fatalf("classify(0,0,%d,%d) = %d, want %d", tc.x2, tc.y2, got, tc.want)
		}
	}
}

func TestLinePathIsEightConnected(t *testing.T) {
	ends := []image.Point{{0, 0}, {17, 3}, {3, 17}, {-20, 9}, {9, -20}, {31, -30}, {-7, -40}, {25, 25}, {1, -1}}
	for _, a := range ends {
		for _, b := range ends {
			if a.X == b.X || a.Y == b.Y {
				continue
			}
			x1, y1, x2, y2 := a.X, a.Y, b.X, b.Y
			if x1 > x2 {
				x1, y1, x2, y2 = x2, y2, x1, y1
			}
			steep := classify(x1, y1, x2, y2).steep()

			var pts []image.Point
			eachLinePoint(x1, y1, x2, y2, steep, func(x, y int) {
				pts = append(pts, image.Pt(x, y))
			})
			if pts[0] != image.Pt(x1, y1) || pts[len(pts)-1] != image.Pt(x2, y2) {
				t.Fatalf("%v-%v: ends %v..%v", a, b, pts[0], pts[len(pts)-1])
			}
			for i := 1; i < len(pts); i++ {
				dx, dy := abs(pts[i].X-pts[i-1].X), abs(pts[i].Y-pts[i-1].Y)
				if dx > 1 || dy > 1 {
					t.Fatalf("%v-%v: gap between %v and %v", a, b, pts[i-1], pts[i])
				}
				if steep && dy != 1 || !steep && dx != 1 {
					t.Fatalf("%v-%v: driving axis stalled at %v", a, b, pts[i])
				}
			}
		}
	}
}

func TestThickLineStrokePolicy(t *testing.T) {
	d, p := newOnPanel(t)
	d.Line(10, 10, 40, 20, 3, White)
	if !lit(p, 10, 10) || !lit(p, 10, 12) || lit(p, 10, 9) {
		t.Fatal("forward stroke should grow downward from the ideal line")
	}

	d, p = newOnPanel(t)
	d.SetStrokePolicy(StrokeCentered)
	d.Line(10, 10, 40, 20, 3, White)
	if !lit(p, 10, 9) || !lit(p, 10, 11) || lit(p, 10, 12) {
		t.Fatal("centered stroke should straddle the ideal line")
	}

	d, p = newOnPanel(t)
	d.Line(50, 10, 55, 60, 2, White)
	if !lit(p, 51, 10) || lit(p, 49, 10) {
		t.Fatal("steep lines shift along x")
	}
}

func TestRectOutline(t *testing.T) {
	d, p := newOnPanel(t)
	d.Rect(10, 10, 20, 10, 1, White)
	for _, pt := range []image.Point{{10, 10}, {30, 10}, {10, 20}, {30, 20}, {20, 10}, {10, 15}} {
		if !lit(p, pt.X, pt.Y) {
			t.Fatalf("%v not painted", pt)
		}
	}
	if lit(p, 20, 15) {
		t.Fatal("interior painted")
	}
}

func trianglesRows(a, b, c image.Point) map[int]int {
	rows := map[int]int{}
	eachTriangleSpan(a, b, c, func(x1, x2, y int) { rows[y]++ })
	return rows
}

func TestFillTriangleRowsExactlyOnce(t *testing.T) {
	cases := [][3]image.Point{
		{{10, 10}, {30, 10}, {20, 30}}, // flat top
		{{20, 5}, {5, 25}, {40, 25}},   // flat bottom
		{{3, 40}, {60, 2}, {25, 90}},
		{{5, 5}, {9, 5}, {2, 5}}, // degenerate: one row
	}
	for _, tc := range cases {
		rows := trianglesRows(tc[0], tc[1], tc[2])
		lo, hi := tc[0].Y, tc[0].Y
		for _, p := range tc[1:] {
			lo, hi = min(lo, p.Y), max(hi, p.Y)
		}
		if len(rows) != hi-lo+1 {
			t.Fatalf("%v: %d rows, want %d", tc, len(rows), hi-lo+1)
		}
		for y := lo; y <= hi; y++ {
			if rows[y] != 1 {
				t.Fatalf("%v: row %d drawn %d times", tc, y, rows[y])
			}
		}
	}
}

func TestFillTriangleOnPanel(t *testing.T) {
	d, p := newOnPanel(t)
	d.FillTriangle(image.Pt(20, 5), image.Pt(5, 25), image.Pt(40, 25), Green)
	for _, pt := range []image.Point{{20, 5}, {5, 25}, {40, 25}, {22, 20}} {
		if !lit(p, pt.X, pt.Y) {
			t.Fatalf("%v not filled", pt)
		}
	}
	if lit(p, 5, 5) || lit(p, 40, 6) {
		t.Fatal("fill leaked outside the triangle")
	}
}

func TestPolygonClosesShape(t *testing.T) {
	d, r := newRecorded(t, nil)
	d.Polygon([]image.Point{{1, 1}}, 1, White)
	if len(r.ops) != 0 {
		t.Fatal("single vertex should draw nothing")
	}

	d, p := newOnPanel(t)
	d.Polygon([]image.Point{{10, 10}, {40, 10}, {40, 30}, {10, 30}}, 1, White)
	if !lit(p, 10, 20) {
		t.Fatal("closing edge missing")
	}
}

func TestCircleMidpointTolerance(t *testing.T) {
	for r := 1; r <= 60; r++ {
		eachCircleOctant(r, func(x, y int) {
			dist := math.Hypot(float64(x), float64(y))
			if math.Abs(dist-float64(r)) > 1 {
				t.Fatalf("r=%d: point (%d,%d) at distance %.3f", r, x, y, dist)
			}
		})
	}
}

func TestCircleIncludesAxisPoints(t *testing.T) {
	d, p := newOnPanel(t)
	d.Circle(60, 60, 17, 1, White)
	for _, pt := range []image.Point{{77, 60}, {43, 60}, {60, 77}, {60, 43}} {
		if !lit(p, pt.X, pt.Y) {
			t.Fatalf("%v missing", pt)
		}
	}
	if lit(p, 60, 60) {
		t.Fatal("centre painted by an outline")
	}

	d.FillCircle(20, 20, 6, Red)
	if r, _, _ := p.RGB(20, 20); r != 0x3F {
		t.Fatal("disc centre not filled")
	}
	if r, _, _ := p.RGB(26, 20); r != 0x3F {
		t.Fatal("disc edge not filled")
	}
}

func TestCircleZeroRadiusIsNoop(t *testing.T) {
	d, p := newOnPanel(t)
	d.Circle(10, 10, 0, 1, White)
	d.FillCircle(10, 10, 0, White)
	d.Circle(10, 10, -3, 2, White)
	if st := p.Stats(); st.Commands != 0 {
		t.Fatalf("stats = %+v", st)
	}
}
