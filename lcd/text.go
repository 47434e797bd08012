package lcd

import "tivagc/fonts/font5x8"

// DrawChar blits ch at (x,y) scaled by size. Each cell is 6x8 pixels per
// unit of size: five glyph columns and one blank column on the right.
// When fg == bg only the glyph pixels are written.
func (d *Device) DrawChar(x, y int, ch byte, fg, bg Color, size int) {
	if size <= 0 {
		size = 1
	}
	g := font5x8.Lookup(ch)
	cw, chh := font5x8.CellWidth*size, font5x8.CellHeight*size

	if fg == bg {
		for col := 0; col < font5x8.Columns; col++ {
			for row := 0; row < font5x8.Rows; row++ {
				if !g.Bit(col, row) {
					continue
				}
				if size == 1 {
					d.DrawPixel(x+col, y+row, fg)
				} else {
					d.FillRect(x+col*size, y+row*size, size-1, size-1, fg)
				}
			}
		}
		return
	}

	if x < 0 || y < 0 || x+cw > d.w || y+chh > d.h {
		// Partly off-screen: paint cell by cell and let FillRect clip.
		for col := 0; col < font5x8.CellWidth; col++ {
			for row := 0; row < font5x8.Rows; row++ {
				c := bg
				if col < font5x8.Columns && g.Bit(col, row) {
					c = fg
				}
				d.FillRect(x+col*size, y+row*size, size-1, size-1, c)
			}
		}
		return
	}

	d.SetArea(x, y, x+cw-1, y+chh-1)
	d.ActivateWrite()
	for py := 0; py < chh; py++ {
		row := py / size
		run, cur := 0, bg
		for px := 0; px < cw; px++ {
			col := px / size
			c := bg
			if col < font5x8.Columns && g.Bit(col, row) {
				c = fg
			}
			if c != cur && run > 0 {
				d.PushPixels(cur, run)
				run = 0
			}
			cur = c
			run++
		}
		d.PushPixels(cur, run)
	}
}

// TextGrid returns the character grid of the panel.
func (d *Device) TextGrid() (cols, rows int) {
	return d.w / font5x8.CellWidth, d.h / font5x8.CellHeight
}

// DrawString writes s on the character grid starting at (col,row) in fg
// over the current background. It stops after n characters (n <= 0 means
// all of s), at a NUL, or at the right edge, and returns how many
// characters it drew.
func (d *Device) DrawString(col, row int, s string, n int, fg Color) int {
	cols, rows := d.TextGrid()
	if col < 0 || row < 0 || row >= rows {
		return 0
	}
	if n <= 0 || n > len(s) {
		n = len(s)
	}
	bg := d.settings.Background
	drawn := 0
	for i := 0; i < n; i++ {
		if s[i] == 0 || col+i >= cols {
			break
		}
		d.DrawChar((col+i)*font5x8.CellWidth, row*font5x8.CellHeight, s[i], fg, bg, 1)
		drawn++
	}
	return drawn
}
