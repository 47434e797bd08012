package snake

import (
	"testing"
	"time"

	"tivagc/engine"
	"tivagc/engine/enginetest"
	"tivagc/hal"
	"tivagc/lcd"
)

func newGame() *Game {
	g := &Game{}
	g.reset(22, 20, 1)
	g.food = point{0, 0}
	return g
}

func TestStepMovesHead(t *testing.T) {
	g := newGame()
	g.step()
	want := []point{{12, 10}, {11, 10}, {10, 10}}
	if len(g.snake) != len(want) {
		t.Fatalf("len = %d", len(g.snake))
	}
	for i, p := range want {
		if g.snake[i] != p {
			t.Fatalf("snake[%d] = %v, want %v", i, g.snake[i], p)
		}
	}
}

func TestStepWrapsAround(t *testing.T) {
	g := newGame()
	g.snake = []point{{21, 3}, {20, 3}, {19, 3}}
	g.step()
	if g.snake[0] != (point{0, 3}) {
		t.Fatalf("head = %v", g.snake[0])
	}

	g.snake = []point{{4, 0}, {4, 1}, {4, 2}}
	g.headDir, g.nextDir = dirUp, dirUp
	g.step()
	if g.snake[0] != (point{4, 19}) {
		t.Fatalf("head = %v", g.snake[0])
	}
}

func TestEatingGrows(t *testing.T) {
	g := newGame()
	g.food = point{12, 10}
	g.step()
	if len(g.snake) != 4 || g.score != 1 {
		t.Fatalf("len = %d score = %d", len(g.snake), g.score)
	}
	if g.occupied(g.food) {
		t.Fatalf("food %v spawned on the snake", g.food)
	}
	if g.stepInterval() != stepIntervalBase-stepSpeedup {
		t.Fatalf("interval = %v", g.stepInterval())
	}
}

func TestSelfCollision(t *testing.T) {
	g := newGame()
	g.snake = []point{{5, 5}, {6, 5}, {6, 4}, {5, 4}, {4, 4}}
	g.headDir, g.nextDir = dirLeft, dirUp
	g.step()
	if g.alive {
		t.Fatal("expected a crash into the body")
	}
}

func TestChasingTailIsAllowed(t *testing.T) {
	g := newGame()
	g.snake = []point{{5, 5}, {6, 5}, {6, 4}, {5, 4}}
	g.headDir, g.nextDir = dirLeft, dirUp
	g.step()
	if !g.alive {
		t.Fatal("the tail moves away in the same step")
	}
}

func TestReversalIgnored(t *testing.T) {
	g := newGame()
	g.setDir(dirLeft)
	if g.nextDir != dirRight {
		t.Fatalf("nextDir = %v", g.nextDir)
	}
	g.setDir(dirUp)
	if g.nextDir != dirUp {
		t.Fatalf("nextDir = %v", g.nextDir)
	}
}

func TestStepIntervalFloor(t *testing.T) {
	g := newGame()
	g.score = 100
	if got := g.stepInterval(); got != stepIntervalMin {
		t.Fatalf("interval = %v", got)
	}
}

func TestPlayOnPanel(t *testing.T) {
	r := enginetest.New(t)
	g := &Game{}
	started := false
	r.Engine.SetMainMenu(func(ctx *engine.Context) {
		if !started {
			started = true
			g.Start(ctx)
		}
	})
	r.Step(t)
	if r.Count(headColor) == 0 || r.Count(foodColor) == 0 {
		t.Fatal("board not drawn")
	}

	head := g.snake[0]
	r.Run(t, 1, stepIntervalBase)
	if g.snake[0] == head {
		t.Fatal("snake did not move")
	}

	r.Press(t, hal.ButtonSW2)
	if !g.paused {
		t.Fatal("SW2 should pause")
	}
	head = g.snake[0]
	r.Run(t, 3, stepIntervalBase)
	if g.snake[0] != head {
		t.Fatal("paused snake moved")
	}

	r.Input.Buttons[hal.ButtonSelect] = true
	r.Run(t, 11, 100*time.Millisecond)
	if r.Engine.Running() {
		t.Fatal("holding SEL should quit")
	}
}

func TestCrashShowsRestart(t *testing.T) {
	r := enginetest.New(t)
	g := &Game{}
	r.Engine.SetMainMenu(g.Start)
	r.Step(t)

	g.snake = []point{{5, 5}, {6, 5}, {6, 4}, {5, 4}, {4, 4}}
	g.headDir, g.nextDir = dirLeft, dirLeft
	r.Input.Y = 0
	r.Run(t, 1, stepIntervalBase)
	if g.alive {
		t.Fatal("expected a crash")
	}
	r.Input.Centre()
	r.Step(t)

	r.Press(t, hal.ButtonSW1)
	if !g.alive || len(g.snake) != 3 {
		t.Fatalf("restart: alive=%v len=%d", g.alive, len(g.snake))
	}
	if r.Count(lcd.Black) == 0 {
		t.Fatal("board not redrawn")
	}
}
