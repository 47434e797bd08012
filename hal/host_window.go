//go:build !tinygo && cgo

package hal

import (
	"image"

	"tivagc/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowScale is the default magnification of the 132x132 panel.
const WindowScale = 4

// RunWindow starts a desktop window that shows the simulated panel and
// maps the keyboard onto the console controls. It blocks until the window
// closes or Escape is pressed.
func RunWindow(newApp func(HAL) func() error) error {
	h := newHostHAL()
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("TivaGC (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.panel.w*WindowScale, h.panel.h*WindowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if pollKeyboard(g.h.in) {
		return ebiten.Termination
	}
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	if g.img == nil {
		g.img = image.NewRGBA(p.Bounds())
		g.fbImg = ebiten.NewImage(p.w, p.h)
	}
	p.SnapshotInto(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.w, g.h.panel.h
}
