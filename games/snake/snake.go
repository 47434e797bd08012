// Package snake is the classic snake on a wrap-around grid. The stick
// steers, SW2 pauses, SW1 restarts after a crash and holding SEL quits.
package snake

import (
	"fmt"
	"time"

	"tivagc/engine"
	"tivagc/input"
	"tivagc/lcd"
)

type dir uint8

const (
	dirUp dir = iota
	dirRight
	dirDown
	dirLeft
)

type point struct {
	x int
	y int
}

const (
	cell   = 6
	topBar = 10

	stepIntervalBase = 180 * time.Millisecond
	stepIntervalMin  = 70 * time.Millisecond
	stepSpeedup      = 8 * time.Millisecond
)

var (
	snakeColor = lcd.Green
	headColor  = lcd.Turquoise
	foodColor  = lcd.Red
	textColor  = lcd.LightGrey
)

type Game struct {
	gridW int
	gridH int

	snake   []point
	headDir dir
	nextDir dir

	food point
	rng  uint32

	score  int
	alive  bool
	paused bool

	exit input.Hold
}

// Start resets the game for the panel behind ctx and hands it the loop.
func (g *Game) Start(ctx *engine.Context) {
	w, h := ctx.LCD().Size()
	g.reset(w/cell, (h-topBar)/cell, ctx.Rand().Uint32())
	g.exit = input.Hold{Ticks: 1000}
	g.render(ctx.LCD())
	ctx.PopTicks()
	ctx.SetUpdate(g.Update)
}

func (g *Game) reset(gridW, gridH int, seed uint32) {
	g.gridW, g.gridH = gridW, gridH
	start := point{x: gridW / 2, y: gridH / 2}
	g.snake = append(g.snake[:0], start, point{start.x - 1, start.y}, point{start.x - 2, start.y})
	g.headDir = dirRight
	g.nextDir = dirRight
	g.score = 0
	g.alive = true
	g.paused = false
	g.rng = seed
	g.spawnFood()
}

func (g *Game) Update(ctx *engine.Context) bool {
	d := ctx.LCD()
	if g.exit.Update(ctx.Select(), ctx.Now()) {
		return false
	}
	if !g.alive {
		if ctx.SW1().Pressed {
			g.reset(g.gridW, g.gridH, ctx.Rand().Uint32())
			g.render(d)
			ctx.PopTicks()
		}
		return true
	}
	if ctx.SW2().Pressed {
		g.paused = !g.paused
		g.drawStatus(d)
	}
	if g.paused {
		return true
	}

	js := ctx.Joystick()
	switch {
	case js.Up:
		g.setDir(dirUp)
	case js.Down:
		g.setDir(dirDown)
	case js.Left:
		g.setDir(dirLeft)
	case js.Right:
		g.setDir(dirRight)
	}

	if !ctx.Elapsed(g.stepInterval()) {
		return true
	}

	tail := g.snake[len(g.snake)-1]
	oldHead := g.snake[0]
	score := g.score
	g.step()

	if !g.alive {
		g.drawStatus(d)
		return true
	}
	if g.score != score {
		g.drawCell(d, g.food, foodColor)
		g.drawStatus(d)
	} else {
		g.drawCell(d, tail, d.Settings().Background)
	}
	g.drawCell(d, oldHead, snakeColor)
	g.drawCell(d, g.snake[0], headColor)
	return true
}

func (g *Game) setDir(d dir) {
	if (g.headDir == dirUp && d == dirDown) ||
		(g.headDir == dirDown && d == dirUp) ||
		(g.headDir == dirLeft && d == dirRight) ||
		(g.headDir == dirRight && d == dirLeft) {
		return
	}
	g.nextDir = d
}

func (g *Game) stepInterval() time.Duration {
	interval := stepIntervalBase - time.Duration(g.score)*stepSpeedup
	if interval < stepIntervalMin {
		interval = stepIntervalMin
	}
	return interval
}

func (g *Game) step() {
	if !g.alive || len(g.snake) == 0 {
		return
	}

	g.headDir = g.nextDir
	next := g.snake[0]
	switch g.headDir {
	case dirUp:
		next.y--
	case dirDown:
		next.y++
	case dirLeft:
		next.x--
	case dirRight:
		next.x++
	}
	next.x = (next.x + g.gridW) % g.gridW
	next.y = (next.y + g.gridH) % g.gridH

	willEat := next == g.food
	check := g.snake
	if !willEat && len(check) > 1 {
		check = check[:len(check)-1]
	}
	for _, p := range check {
		if p == next {
			g.alive = false
			return
		}
	}

	g.snake = append(g.snake, point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = next
	if willEat {
		g.score++
		g.spawnFood()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

func (g *Game) spawnFood() {
	for tries := 0; tries < 1024; tries++ {
		g.rng = xorshift32(g.rng)
		x := int(g.rng % uint32(g.gridW))
		g.rng = xorshift32(g.rng)
		y := int(g.rng % uint32(g.gridH))
		p := point{x: x, y: y}
		if !g.occupied(p) {
			g.food = p
			return
		}
	}
	g.food = point{}
}

func (g *Game) occupied(p point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

func (g *Game) render(d *lcd.Device) {
	d.SetBackground(lcd.Black)
	d.Clear()
	w, _ := d.Size()
	d.HLine(0, w-1, topBar-1, 1, lcd.DarkGrey)
	g.drawStatus(d)
	g.drawCell(d, g.food, foodColor)
	for i, p := range g.snake {
		c := snakeColor
		if i == 0 {
			c = headColor
		}
		g.drawCell(d, p, c)
	}
}

func (g *Game) drawStatus(d *lcd.Device) {
	msg := fmt.Sprintf("SNAKE %-4d", g.score)
	switch {
	case !g.alive:
		msg += "CRASH SW1"
	case g.paused:
		msg += "PAUSED   "
	default:
		msg += "         "
	}
	d.DrawString(0, 0, msg, 0, textColor)
}

func (g *Game) drawCell(d *lcd.Device, p point, c lcd.Color) {
	d.FillRect(p.x*cell, topBar+p.y*cell, cell-2, cell-2, c)
}
