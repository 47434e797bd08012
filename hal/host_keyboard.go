//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window key map: arrows or WASD move the stick, Z/J is SW1, X/K is SW2,
// Enter/Space is SEL.
var keyButtons = [NumButtons][]ebiten.Key{
	ButtonSW1:    {ebiten.KeyZ, ebiten.KeyJ},
	ButtonSW2:    {ebiten.KeyX, ebiten.KeyK},
	ButtonSelect: {ebiten.KeyEnter, ebiten.KeySpace},
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// pollKeyboard copies the key levels into in and reports whether Escape
// was just pressed.
func pollKeyboard(in *hostInput) (quit bool) {
	for id, keys := range keyButtons {
		in.setButton(ButtonID(id), anyPressed(keys...))
	}

	in.setJoystick(stickFromKeys(
		anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
	))

	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
