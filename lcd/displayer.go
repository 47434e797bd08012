package lcd

import "image/color"

// Displayer adapts a Device to tinygo.org/x/drivers.Displayer so
// tinyfont and other TinyGo drawing code can target the panel. Pixels go
// straight to the glass; Display only reports transport errors.
type Displayer struct {
	*Device
}

func (d Displayer) Size() (x, y int16) {
	return int16(d.w), int16(d.h)
}

func (d Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.DrawPixel(int(x), int(y), FromRGBA(c))
}

func (d Displayer) Display() error { return d.Err() }
