//go:build !tinygo

package hal

type termActionKind uint8

const (
	termNone termActionKind = iota
	termButton
	termStick
	termQuit
)

type termAction struct {
	kind   termActionKind
	button ButtonID
	x, y   uint16
}

// termDecoder turns raw terminal bytes, including ESC [ A..D arrow
// sequences, into console actions.
type termDecoder struct {
	esc int // 0: idle, 1: got ESC, 2: got ESC [
}

func stickAction(up, down, left, right bool) termAction {
	x, y := stickFromKeys(up, down, left, right)
	return termAction{kind: termStick, x: x, y: y}
}

func (d *termDecoder) feed(b byte) termAction {
	switch d.esc {
	case 1:
		if b == '[' || b == 'O' {
			d.esc = 2
			return termAction{}
		}
		d.esc = 0
	case 2:
		d.esc = 0
		switch b {
		case 'A':
			return stickAction(true, false, false, false)
		case 'B':
			return stickAction(false, true, false, false)
		case 'C':
			return stickAction(false, false, false, true)
		case 'D':
			return stickAction(false, false, true, false)
		}
		return termAction{}
	}

	switch b {
	case 0x1B:
		d.esc = 1
	case 'w', 'W':
		return stickAction(true, false, false, false)
	case 's', 'S':
		return stickAction(false, true, false, false)
	case 'a', 'A':
		return stickAction(false, false, true, false)
	case 'd', 'D':
		return stickAction(false, false, false, true)
	case 'z', 'Z', 'j', 'J':
		return termAction{kind: termButton, button: ButtonSW1}
	case 'x', 'X', 'k', 'K':
		return termAction{kind: termButton, button: ButtonSW2}
	case '\r', '\n', ' ':
		return termAction{kind: termButton, button: ButtonSelect}
	case 'q', 'Q', 0x03:
		return termAction{kind: termQuit}
	}
	return termAction{}
}
