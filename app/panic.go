package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"tivagc/fonts/font5x8"
	"tivagc/hal"
	"tivagc/lcd"
)

var (
	panicBackground = lcd.Blue
	panicForeground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// showPanic logs v with its stack and paints as much of it as fits on
// the panel.
func showPanic(log hal.Logger, d *lcd.Device, v any, stack []byte) {
	lines := []string{"PANIC", fmt.Sprintf("%v", v)}
	frames := stackLines(stack)

	if log != nil {
		log.WriteLineString(fmt.Sprintf("TivaGC panic: %v", v))
		for _, l := range frames {
			log.WriteLineString(l)
		}
	}
	if d == nil {
		return
	}
	if len(frames) > 0 {
		lines = append(lines, "stack:")
		lines = append(lines, frames...)
	} else {
		lines = append(lines, "stack: unavailable")
	}

	d.SetBackground(panicBackground)
	d.Clear()

	w, h := d.Size()
	cols := w / font5x8.CellWidth
	rows := h / font5x8.CellHeight
	out := lcd.Displayer{Device: d}
	row := 0
	for _, line := range lines {
		for len(line) > 0 && row < rows {
			chunk, rest := takeRunes(line, cols)
			y := row*font5x8.CellHeight + font5x8.Rows - 1
			tinyfont.WriteLine(out, font5x8.Font, 0, int16(y), chunk, panicForeground)
			row++
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// stackLines keeps the function lines of a goroutine dump, dropping the
// header and the file:line continuations.
func stackLines(stack []byte) []string {
	var out []string
	for i, l := range strings.Split(string(stack), "\n") {
		if i == 0 || l == "" || strings.HasPrefix(l, "\t") {
			continue
		}
		out = append(out, l)
	}
	return out
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
