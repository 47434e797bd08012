package menu_test

import (
	"testing"

	"tivagc/engine"
	"tivagc/engine/enginetest"
	"tivagc/games/menu"
	"tivagc/hal"
	"tivagc/lcd"
)

func TestSelectAndStart(t *testing.T) {
	r := enginetest.New(t)
	var started []string
	quit := func(*engine.Context) bool { return false }
	m := menu.New("GAMES",
		menu.Item{Name: "Alpha", Start: func(ctx *engine.Context) {
			started = append(started, "Alpha")
			ctx.SetUpdate(quit)
		}},
		menu.Item{Name: "Beta", Start: func(ctx *engine.Context) {
			started = append(started, "Beta")
			ctx.SetUpdate(quit)
		}},
	)
	r.Engine.SetMainMenu(m.Run)

	r.Step(t)
	if r.Count(lcd.Yellow) == 0 {
		t.Fatal("selected item not highlighted")
	}

	r.Input.Y = hal.JoystickMax
	r.Step(t)
	r.Step(t)
	if m.Selected() != 1 {
		t.Fatalf("selected = %d, held stick should move once", m.Selected())
	}
	r.Input.Centre()
	r.Step(t)

	r.Input.Y = hal.JoystickMax
	r.Step(t)
	if m.Selected() != 0 {
		t.Fatalf("selected = %d, want wrap to 0", m.Selected())
	}
	r.Input.Y = hal.JoystickCenter
	r.Step(t)
	r.Input.Y = 0
	r.Step(t)
	if m.Selected() != 1 {
		t.Fatalf("selected = %d, want wrap to 1", m.Selected())
	}
	r.Input.Centre()

	r.Press(t, hal.ButtonSW1)
	if len(started) != 1 || started[0] != "Beta" {
		t.Fatalf("started = %v", started)
	}
	if r.Engine.Running() {
		t.Fatal("game should have handed control back")
	}

	r.Panel.ResetStats()
	r.Step(t)
	if r.Panel.Stats().PixelWrites == 0 {
		t.Fatal("menu not redrawn after the game")
	}

	r.Press(t, hal.ButtonSelect)
	if len(started) != 2 || started[1] != "Beta" {
		t.Fatalf("started = %v", started)
	}
}

func TestEmptyMenu(t *testing.T) {
	r := enginetest.New(t)
	m := menu.New("EMPTY")
	r.Engine.SetMainMenu(m.Run)
	r.Input.Buttons[hal.ButtonSW1] = true
	r.Step(t)
	if r.Engine.Running() {
		t.Fatal("nothing to start")
	}
}
