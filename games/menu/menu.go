// Package menu is the console's main menu: a title and a list of games
// picked with the joystick and started with SW1 or SEL.
package menu

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"tivagc/engine"
	"tivagc/fonts/font5x8"
	"tivagc/lcd"
)

// Item is one menu entry. Start typically resets the game and calls
// ctx.SetUpdate.
type Item struct {
	Name  string
	Start func(ctx *engine.Context)
}

const firstItemRow = 3

type Menu struct {
	title string
	items []Item

	sel       int
	up, down  bool
	lastFrame uint64
}

func New(title string, items ...Item) *Menu {
	return &Menu{title: title, items: items}
}

// Selected returns the index of the highlighted item.
func (m *Menu) Selected() int { return m.sel }

// Run is the engine.MenuFunc. The whole screen is redrawn whenever the
// menu regains control after a game.
func (m *Menu) Run(ctx *engine.Context) {
	d := ctx.LCD()
	if m.lastFrame == 0 || ctx.Frame() != m.lastFrame+1 {
		m.drawAll(d)
	}
	m.lastFrame = ctx.Frame()
	if len(m.items) == 0 {
		return
	}

	js := ctx.Joystick()
	prev := m.sel
	if js.Up && !m.up {
		m.sel = (m.sel + len(m.items) - 1) % len(m.items)
	}
	if js.Down && !m.down {
		m.sel = (m.sel + 1) % len(m.items)
	}
	m.up, m.down = js.Up, js.Down
	if m.sel != prev {
		m.drawItem(d, prev)
		m.drawItem(d, m.sel)
	}

	if ctx.SW1().Pressed || ctx.Select().Pressed {
		it := m.items[m.sel]
		ctx.Logf("menu: starting %s", it.Name)
		m.lastFrame = 0
		d.SetBackground(lcd.Black)
		d.Clear()
		it.Start(ctx)
	}
}

func (m *Menu) drawAll(d *lcd.Device) {
	d.SetBackground(lcd.Black)
	d.Clear()

	w, _ := d.Size()
	_, outbox := tinyfont.LineWidth(font5x8.Font, m.title)
	x := (w - int(outbox)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(lcd.Displayer{Device: d}, font5x8.Font, int16(x), int16(font5x8.Rows+3), m.title, color.RGBA{R: 0xFF, G: 0xD7, A: 0xFF})
	d.HLine(4, w-5, font5x8.CellHeight*2, 1, lcd.DarkGrey)

	for i := range m.items {
		m.drawItem(d, i)
	}
	_, rows := d.TextGrid()
	d.DrawString(0, rows-1, "SW1/SEL start", 0, lcd.Grey)
}

func (m *Menu) drawItem(d *lcd.Device, i int) {
	marker, fg := "  ", lcd.White
	if i == m.sel {
		marker, fg = "> ", lcd.Yellow
	}
	d.DrawString(1, firstItemRow+i, marker+m.items[i].Name, 0, fg)
}
