// Package pong is a one-player pong against a paddle that tracks the
// ball. The stick moves the left paddle; holding SEL quits.
package pong

import (
	"fmt"
	"image"
	"time"

	"tivagc/engine"
	"tivagc/input"
	"tivagc/lcd"
)

const (
	topBar = 10

	paddleW = 3
	paddleH = 18
	ballR   = 2

	playerSpeed = 3
	cpuSpeed    = 2

	frameInterval = 20 * time.Millisecond
	winScore      = 9
)

type Game struct {
	w, h int

	player, cpu int // paddle top edges
	ball        image.Point
	vel         image.Point

	scorePlayer, scoreCPU int
	over                  bool

	exit input.Hold
}

func (g *Game) Start(ctx *engine.Context) {
	w, h := ctx.LCD().Size()
	g.reset(w, h)
	g.serve(1, ctx.Rand().Intn(2) == 0)
	g.exit = input.Hold{Ticks: 1000}
	g.render(ctx.LCD())
	ctx.PopTicks()
	ctx.SetUpdate(g.Update)
}

func (g *Game) reset(w, h int) {
	g.w, g.h = w, h
	g.player = topBar + (h-topBar-paddleH)/2
	g.cpu = g.player
	g.scorePlayer, g.scoreCPU = 0, 0
	g.over = false
}

// serve puts the ball in the centre moving toward dir (+1 right).
func (g *Game) serve(dir int, up bool) {
	g.ball = image.Pt(g.w/2, topBar+(g.h-topBar)/2)
	g.vel = image.Pt(2*dir, 1)
	if up {
		g.vel.Y = -1
	}
}

func (g *Game) Update(ctx *engine.Context) bool {
	d := ctx.LCD()
	if g.exit.Update(ctx.Select(), ctx.Now()) {
		return false
	}
	if g.over {
		if ctx.SW1().Pressed {
			g.reset(g.w, g.h)
			g.serve(1, ctx.Rand().Intn(2) == 0)
			g.render(d)
		}
		return true
	}
	if !ctx.Elapsed(frameInterval) {
		return true
	}

	oldBall, oldPlayer, oldCPU := g.ball, g.player, g.cpu
	js := ctx.Joystick()
	dy := 0
	switch {
	case js.Up:
		dy = -playerSpeed
	case js.Down:
		dy = playerSpeed
	}
	scored := g.advance(dy)

	bg := d.Settings().Background
	if scored {
		g.render(d)
		return true
	}
	if oldPlayer != g.player {
		g.drawPaddle(d, 1, oldPlayer, bg)
		g.drawPaddle(d, 1, g.player, lcd.White)
	}
	if oldCPU != g.cpu {
		g.drawPaddle(d, g.w-1-paddleW, oldCPU, bg)
		g.drawPaddle(d, g.w-1-paddleW, g.cpu, lcd.White)
	}
	d.FillCircle(oldBall.X, oldBall.Y, ballR, bg)
	d.FillCircle(g.ball.X, g.ball.Y, ballR, lcd.Yellow)
	return true
}

// advance moves paddles and ball by one frame and reports whether a
// point was scored.
func (g *Game) advance(playerDY int) bool {
	g.player = clampPaddle(g.player+playerDY, g.h)

	target := g.ball.Y - paddleH/2
	switch {
	case target > g.cpu:
		g.cpu = clampPaddle(g.cpu+min(cpuSpeed, target-g.cpu), g.h)
	case target < g.cpu:
		g.cpu = clampPaddle(g.cpu-min(cpuSpeed, g.cpu-target), g.h)
	}

	g.ball = g.ball.Add(g.vel)
	if g.ball.Y-ballR <= topBar {
		g.ball.Y = topBar + ballR + 1
		g.vel.Y = -g.vel.Y
	}
	if g.ball.Y+ballR >= g.h-1 {
		g.ball.Y = g.h - 2 - ballR
		g.vel.Y = -g.vel.Y
	}

	leftFace := 1 + paddleW
	rightFace := g.w - 1 - paddleW
	switch {
	case g.vel.X < 0 && g.ball.X-ballR <= leftFace:
		if g.hits(g.player) {
			g.ball.X = leftFace + ballR + 1
			g.bounce(g.player)
			return false
		}
		if g.ball.X < 0 {
			g.scoreCPU++
			g.point(1)
			return true
		}
	case g.vel.X > 0 && g.ball.X+ballR >= rightFace:
		if g.hits(g.cpu) {
			g.ball.X = rightFace - ballR - 1
			g.bounce(g.cpu)
			return false
		}
		if g.ball.X >= g.w {
			g.scorePlayer++
			g.point(-1)
			return true
		}
	}
	return false
}

func (g *Game) hits(top int) bool {
	return g.ball.Y+ballR >= top && g.ball.Y-ballR <= top+paddleH
}

// bounce reverses the ball and steers it by where it met the paddle.
func (g *Game) bounce(top int) {
	g.vel.X = -g.vel.X
	off := g.ball.Y - (top + paddleH/2)
	switch {
	case off < -paddleH/4:
		g.vel.Y = -2
	case off > paddleH/4:
		g.vel.Y = 2
	case g.vel.Y == 0:
		g.vel.Y = 1
	default:
		g.vel.Y = sign(g.vel.Y)
	}
}

func (g *Game) point(dir int) {
	if g.scorePlayer >= winScore || g.scoreCPU >= winScore {
		g.over = true
		return
	}
	g.serve(dir, g.vel.Y < 0)
}

func clampPaddle(top, h int) int {
	return min(max(top, topBar), h-1-paddleH)
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func (g *Game) render(d *lcd.Device) {
	d.SetBackground(lcd.Black)
	d.Clear()
	d.HLine(0, g.w-1, topBar-1, 1, lcd.DarkGrey)
	for y := topBar + 2; y < g.h; y += 8 {
		d.VLine(g.w/2, y, y+3, 1, lcd.DarkGrey)
	}

	status := fmt.Sprintf("PONG  %d : %d", g.scorePlayer, g.scoreCPU)
	if g.over {
		status += "  SW1"
	}
	d.DrawString(0, 0, status, 0, lcd.LightGrey)

	g.drawPaddle(d, 1, g.player, lcd.White)
	g.drawPaddle(d, g.w-1-paddleW, g.cpu, lcd.White)
	if !g.over {
		d.FillCircle(g.ball.X, g.ball.Y, ballR, lcd.Yellow)
	}
}

func (g *Game) drawPaddle(d *lcd.Device, x, top int, c lcd.Color) {
	d.FillRect(x, top, paddleW-1, paddleH-1, c)
}
