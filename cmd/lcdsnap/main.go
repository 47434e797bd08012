//go:build !tinygo

// Command lcdsnap renders one of the driver's test scenes on the
// simulated panel and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"tivagc/hal"
	"tivagc/lcd"
)

type nopClock struct{}

func (nopClock) Sleep(time.Duration) {}

var scenes = map[string]func(d *lcd.Device){
	"shapes":  drawShapes,
	"text":    drawText,
	"palette": drawPalette,
	"lines":   drawLines,
}

func main() {
	var (
		scene    string
		out      string
		scale    int
		centered bool
	)
	flag.StringVar(&scene, "scene", "shapes", "Scene to draw: "+strings.Join(sceneNames(), ", ")+".")
	flag.StringVar(&out, "o", "lcd.png", "Output PNG path.")
	flag.IntVar(&scale, "scale", 4, "Nearest-neighbour magnification.")
	flag.BoolVar(&centered, "centered-stroke", false, "Centre thick lines on their ideal path.")
	flag.Parse()

	cfg := &lcd.Config{}
	if centered {
		cfg.Stroke = lcd.StrokeCentered
	}
	img, err := render(scene, cfg, scale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := writePNG(out, img); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for n := range scenes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func render(scene string, cfg *lcd.Config, scale int) (*image.RGBA, error) {
	fn, ok := scenes[scene]
	if !ok {
		return nil, fmt.Errorf("lcdsnap: unknown scene %q", scene)
	}
	if scale < 1 {
		return nil, fmt.Errorf("lcdsnap: invalid scale %d", scale)
	}

	p := hal.NewPanel(hal.HostPanelWidth, hal.HostPanelHeight)
	d, err := lcd.New(p, nopClock{}, cfg)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	d.Clear()
	fn(d)
	if err := d.Err(); err != nil {
		return nil, err
	}

	img := p.Snapshot()
	if scale == 1 {
		return img, nil
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lcdsnap: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("lcdsnap: encode %q: %w", path, err)
	}
	return f.Close()
}

func drawShapes(d *lcd.Device) {
	d.Rect(2, 2, 127, 127, 1, lcd.White)
	d.FillRect(10, 10, 40, 30, lcd.Red)
	d.Circle(90, 30, 20, 2, lcd.Green)
	d.FillCircle(40, 90, 18, lcd.Blue)
	d.FillTriangle(image.Pt(70, 120), image.Pt(125, 120), image.Pt(100, 70), lcd.Yellow)
	d.Triangle(image.Pt(70, 60), image.Pt(120, 60), image.Pt(95, 100), 1, lcd.Magenta)
	d.Polygon([]image.Point{{10, 50}, {30, 45}, {35, 65}, {20, 75}, {8, 62}}, 1, lcd.Cyan)
}

func drawText(d *lcd.Device) {
	d.DrawString(0, 0, "TivaGC lcdsnap", 0, lcd.Yellow)
	row := 2
	for c := 0x20; c < 0x80; c += 21 {
		var b strings.Builder
		for i := 0; i < 21 && c+i < 0x7F; i++ {
			b.WriteByte(byte(c + i))
		}
		d.DrawString(0, row, b.String(), 0, lcd.White)
		row++
	}
	d.DrawChar(10, 90, 'A', lcd.Cyan, lcd.Black, 3)
	d.DrawChar(40, 90, 'Z', lcd.Orange, lcd.Orange, 3)
}

func drawPalette(d *lcd.Device) {
	const cols = 5
	w, _ := d.Size()
	cell := w / cols
	for i, c := range lcd.Palette {
		x, y := (i%cols)*cell, (i/cols)*cell
		d.FillRect(x, y, x+cell-2, y+cell-2, c)
	}
}

func drawLines(d *lcd.Device) {
	cx, cy := 66, 66
	for i, c := range lcd.Palette {
		a := i * 6
		d.Line(cx, cy, a, 0, 1, c)
		d.Line(cx, cy, 131-a, 131, 1, c)
	}
	d.Line(0, 66, 131, 80, 4, lcd.White)
	d.VLine(20, 100, 130, 3, lcd.Red)
	d.HLine(40, 120, 110, 5, lcd.Green)
}
