// Package tetris is falling-block tetris on a 10x20 well. The stick moves
// and soft-drops, SW1 rotates, SW2 hard-drops and holding SEL quits.
package tetris

import (
	"fmt"

	"tivagc/engine"
	"tivagc/input"
	"tivagc/lcd"
)

type point struct {
	x int
	y int
}

type pieceID uint8

const (
	pieceI pieceID = iota
	pieceO
	pieceT
	pieceS
	pieceZ
	pieceJ
	pieceL
)

const (
	boardWidth  = 10
	boardHeight = 20

	cell    = 6
	boardX  = 6
	boardY  = 10
	panelX  = boardX + boardWidth*cell + 8
	topText = 0

	fallBaseTicks   = 700
	fallStepTicks   = 60
	fallMinTicks    = 100
	softDropTicks   = 50
	repeatTicks     = 120
	clearFlashTicks = 240
	flashPhaseTicks = 80
)

// Cell values beyond the seven piece colours.
const (
	cellEmpty uint8 = 0
	cellGhost uint8 = 8
	cellFlash uint8 = 9
)

var cellColors = [...]lcd.Color{
	lcd.Black,
	lcd.Cyan,
	lcd.Yellow,
	lcd.Purple,
	lcd.Green,
	lcd.Red,
	lcd.Blue,
	lcd.Orange,
	lcd.DarkGrey,
	lcd.White,
}

type Game struct {
	board [boardWidth * boardHeight]uint8
	shown [boardWidth * boardHeight]uint8

	curID  pieceID
	curRot int
	curPos point
	nextID pieceID

	rng uint32

	score int
	lines int
	level int

	gameOver bool

	clearActive  bool
	clearStarted uint64
	clearRows    [4]int
	clearCount   int

	lastFall uint64
	left     repeat
	right    repeat
	down     repeat

	statusDirty bool
	exit        input.Hold
}

// repeat turns a held direction into moves: one on the edge, then one
// every repeatTicks.
type repeat struct {
	held bool
	next uint64
}

func (r *repeat) update(active bool, now, every uint64) bool {
	if !active {
		r.held = false
		return false
	}
	if !r.held {
		r.held = true
		r.next = now + every
		return true
	}
	if now < r.next {
		return false
	}
	r.next = now + every
	return true
}

func (g *Game) Start(ctx *engine.Context) {
	g.initGame(ctx.Rand().Uint32())
	g.lastFall = ctx.Now()
	g.exit = input.Hold{Ticks: 1000}
	g.renderAll(ctx.LCD())
	ctx.SetUpdate(g.Update)
}

func (g *Game) initGame(seed uint32) {
	g.board = [boardWidth * boardHeight]uint8{}
	g.score = 0
	g.lines = 0
	g.level = 1
	g.gameOver = false
	g.rng = seed
	g.clearActive = false
	g.clearCount = 0
	g.left, g.right, g.down = repeat{}, repeat{}, repeat{}

	g.nextID = g.nextPiece()
	g.spawnPiece()
}

func (g *Game) Update(ctx *engine.Context) bool {
	d := ctx.LCD()
	now := ctx.Now()
	if g.exit.Update(ctx.Select(), now) {
		return false
	}
	if g.gameOver {
		if ctx.SW1().Pressed {
			g.initGame(ctx.Rand().Uint32())
			g.lastFall = now
			g.renderAll(d)
		}
		return true
	}

	if g.clearActive {
		if now-g.clearStarted >= clearFlashTicks {
			g.finishClear()
			g.lastFall = now
		}
		g.render(d, now)
		return true
	}

	js := ctx.Joystick()
	if g.left.update(js.Left, now, repeatTicks) {
		g.tryMove(-1, 0)
	}
	if g.right.update(js.Right, now, repeatTicks) {
		g.tryMove(1, 0)
	}
	if g.down.update(js.Down, now, softDropTicks) {
		if g.tryMove(0, 1) {
			g.score++
			g.statusDirty = true
			g.lastFall = now
		}
	}
	if ctx.SW1().Pressed {
		g.rotate(1)
	}
	if ctx.SW2().Pressed {
		g.hardDrop(now)
	}

	if !g.clearActive && !g.gameOver && now-g.lastFall >= g.fallInterval() {
		g.lastFall = now
		if !g.tryMove(0, 1) {
			g.lockOrClear(now)
		}
	}
	g.render(d, now)
	return true
}

func (g *Game) fallInterval() uint64 {
	interval := fallBaseTicks - (g.level-1)*fallStepTicks
	if interval < fallMinTicks {
		interval = fallMinTicks
	}
	return uint64(interval)
}

func (g *Game) nextPiece() pieceID {
	g.rng = xorshift32(g.rng)
	return pieceID(g.rng % 7)
}

func (g *Game) spawnPiece() {
	g.curID = g.nextID
	g.curRot = 0
	g.curPos = point{x: boardWidth/2 - 2, y: 0}
	g.nextID = g.nextPiece()
	g.statusDirty = true
	if g.collides(g.curPos.x, g.curPos.y, g.curRot) {
		g.gameOver = true
	}
}

// rotate turns the piece, nudging it sideways when the wall or the stack
// is in the way.
func (g *Game) rotate(delta int) {
	nr := ((g.curRot+delta)%4 + 4) % 4
	for _, dx := range []int{0, -1, 1, -2, 2} {
		if !g.collides(g.curPos.x+dx, g.curPos.y, nr) {
			g.curPos.x += dx
			g.curRot = nr
			return
		}
	}
}

func (g *Game) tryMove(dx, dy int) bool {
	if g.collides(g.curPos.x+dx, g.curPos.y+dy, g.curRot) {
		return false
	}
	g.curPos.x += dx
	g.curPos.y += dy
	return true
}

func (g *Game) hardDrop(now uint64) {
	for g.tryMove(0, 1) {
		g.score += 2
	}
	g.lockOrClear(now)
}

func (g *Game) lockOrClear(now uint64) {
	for _, b := range pieceBlocks(g.curID, g.curRot) {
		x, y := g.curPos.x+b.x, g.curPos.y+b.y
		if x < 0 || x >= boardWidth || y < 0 || y >= boardHeight {
			continue
		}
		g.board[y*boardWidth+x] = uint8(g.curID) + 1
	}

	g.clearCount = g.findFullRows(g.clearRows[:])
	if g.clearCount > 0 {
		g.clearActive = true
		g.clearStarted = now
		return
	}
	g.spawnPiece()
}

func (g *Game) findFullRows(dst []int) int {
	n := 0
	for y := boardHeight - 1; y >= 0 && n < len(dst); y-- {
		full := true
		for x := 0; x < boardWidth; x++ {
			if g.board[y*boardWidth+x] == cellEmpty {
				full = false
				break
			}
		}
		if full {
			dst[n] = y
			n++
		}
	}
	return n
}

func (g *Game) finishClear() {
	var skip [boardHeight]bool
	for _, y := range g.clearRows[:g.clearCount] {
		skip[y] = true
	}

	writeY := boardHeight - 1
	for y := boardHeight - 1; y >= 0; y-- {
		if skip[y] {
			continue
		}
		if writeY != y {
			copy(g.board[writeY*boardWidth:(writeY+1)*boardWidth], g.board[y*boardWidth:(y+1)*boardWidth])
		}
		writeY--
	}
	for y := writeY; y >= 0; y-- {
		clear(g.board[y*boardWidth : (y+1)*boardWidth])
	}

	cleared := g.clearCount
	g.lines += cleared
	g.score += 100 * cleared * cleared * g.level
	g.level = 1 + g.lines/10

	g.clearActive = false
	g.clearCount = 0
	g.spawnPiece()
}

func (g *Game) isClearRow(y int) bool {
	if !g.clearActive {
		return false
	}
	for _, r := range g.clearRows[:g.clearCount] {
		if r == y {
			return true
		}
	}
	return false
}

func (g *Game) collides(px, py, rot int) bool {
	for _, b := range pieceBlocks(g.curID, rot) {
		x, y := px+b.x, py+b.y
		if x < 0 || x >= boardWidth || y < 0 || y >= boardHeight {
			return true
		}
		if g.board[y*boardWidth+x] != cellEmpty {
			return true
		}
	}
	return false
}

// pieceBlocks returns the four cells of a piece as offsets in its 4x4
// box, turned rot quarter turns clockwise.
func pieceBlocks(id pieceID, rot int) [4]point {
	var base [4]point
	switch id {
	case pieceI:
		base = [4]point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}
	case pieceO:
		base = [4]point{{1, 0}, {2, 0}, {1, 1}, {2, 1}}
	case pieceT:
		base = [4]point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}
	case pieceS:
		base = [4]point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}
	case pieceZ:
		base = [4]point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	case pieceJ:
		base = [4]point{{0, 0}, {0, 1}, {1, 1}, {2, 1}}
	case pieceL:
		base = [4]point{{2, 0}, {0, 1}, {1, 1}, {2, 1}}
	}

	rot = (rot%4 + 4) % 4
	out := base
	for i, p := range base {
		switch rot {
		case 1:
			out[i] = point{x: 3 - p.y, y: p.x}
		case 2:
			out[i] = point{x: 3 - p.x, y: 3 - p.y}
		case 3:
			out[i] = point{x: p.y, y: 3 - p.x}
		}
	}
	return out
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

// frame computes what every well cell should show right now.
func (g *Game) frame(now uint64) [boardWidth * boardHeight]uint8 {
	out := g.board
	if g.clearActive {
		if (now-g.clearStarted)/flashPhaseTicks%2 == 0 {
			for _, y := range g.clearRows[:g.clearCount] {
				for x := 0; x < boardWidth; x++ {
					out[y*boardWidth+x] = cellFlash
				}
			}
		}
		return out
	}
	if g.gameOver {
		return out
	}

	ghost := g.curPos
	for !g.collides(ghost.x, ghost.y+1, g.curRot) {
		ghost.y++
	}
	blocks := pieceBlocks(g.curID, g.curRot)
	for _, b := range blocks {
		out[(ghost.y+b.y)*boardWidth+ghost.x+b.x] = cellGhost
	}
	for _, b := range blocks {
		out[(g.curPos.y+b.y)*boardWidth+g.curPos.x+b.x] = uint8(g.curID) + 1
	}
	return out
}

// render repaints the well cells whose content changed since the last
// call, and the side panel when the score or next piece changed.
func (g *Game) render(d *lcd.Device, now uint64) {
	want := g.frame(now)
	for i, v := range want {
		if g.shown[i] == v {
			continue
		}
		g.drawCell(d, i%boardWidth, i/boardWidth, v)
		g.shown[i] = v
	}
	if g.statusDirty {
		g.drawStatus(d)
	}
}

func (g *Game) renderAll(d *lcd.Device) {
	d.SetBackground(lcd.Black)
	d.Clear()
	d.DrawString(0, topText, "TETRIS", 0, lcd.White)
	d.Rect(boardX-2, boardY-2, boardWidth*cell+2, boardHeight*cell+2, 1, lcd.Grey)
	clear(g.shown[:])
	g.statusDirty = true
	g.render(d, 0)
}

func (g *Game) drawCell(d *lcd.Device, x, y int, v uint8) {
	px, py := boardX+x*cell, boardY+y*cell
	d.FillRect(px, py, cell-2, cell-2, cellColors[v])
}

func (g *Game) drawStatus(d *lcd.Device) {
	g.statusDirty = false
	col := panelX / 6
	d.DrawString(col, 2, "NEXT", 0, lcd.LightGrey)

	const box = 4 * cell
	top := 3*8 + 2
	d.FillRect(panelX, top, box, box, lcd.Black)
	for _, b := range pieceBlocks(g.nextID, 0) {
		d.FillRect(panelX+b.x*cell, top+b.y*cell, cell-2, cell-2, cellColors[g.nextID+1])
	}

	d.DrawString(col, 8, "SCORE", 0, lcd.LightGrey)
	d.DrawString(col, 9, fmt.Sprintf("%-7d", g.score), 0, lcd.White)
	d.DrawString(col, 11, "LINES", 0, lcd.LightGrey)
	d.DrawString(col, 12, fmt.Sprintf("%-7d", g.lines), 0, lcd.White)
	d.DrawString(col, 14, "LEVEL", 0, lcd.LightGrey)
	d.DrawString(col, 15, fmt.Sprintf("%-7d", g.level), 0, lcd.White)

	msg := "        "
	if g.gameOver {
		msg = "OVER SW1"
	}
	d.DrawString(col, 7, msg, 0, lcd.Yellow)
}
