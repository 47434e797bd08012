//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostInput is the shared input state of the host backends. Window mode
// drives it with key levels; terminal mode can only see key presses, so it
// latches a button or stick deflection for a short hold time instead.
type hostInput struct {
	mu  sync.Mutex
	now func() time.Time

	down    [NumButtons]bool
	latched [NumButtons]time.Time

	x, y      uint16
	stickTill time.Time
	sx, sy    uint16
}

func newHostInput(now func() time.Time) *hostInput {
	if now == nil {
		now = time.Now
	}
	return &hostInput{
		now: now,
		x:   JoystickCenter,
		y:   JoystickCenter,
	}
}

func (in *hostInput) Button(id ButtonID) bool {
	if id >= NumButtons {
		return false
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.down[id] || in.now().Before(in.latched[id])
}

func (in *hostInput) Joystick() (x, y uint16) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.now().Before(in.stickTill) {
		return in.sx, in.sy
	}
	return in.x, in.y
}

func (in *hostInput) setButton(id ButtonID, down bool) {
	if id >= NumButtons {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	in.down[id] = down
}

func (in *hostInput) setJoystick(x, y uint16) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.x, in.y = x, y
}

// latchButton holds id down for d from now.
func (in *hostInput) latchButton(id ButtonID, d time.Duration) {
	if id >= NumButtons {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	in.latched[id] = in.now().Add(d)
}

// latchJoystick deflects the stick to (x, y) for d from now.
func (in *hostInput) latchJoystick(x, y uint16, d time.Duration) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.sx, in.sy = x, y
	in.stickTill = in.now().Add(d)
}

// stickFromKeys maps four direction keys to a full-scale deflection.
func stickFromKeys(up, down, left, right bool) (x, y uint16) {
	x, y = JoystickCenter, JoystickCenter
	switch {
	case left && !right:
		x = 0
	case right && !left:
		x = JoystickMax
	}
	switch {
	case up && !down:
		y = 0
	case down && !up:
		y = JoystickMax
	}
	return x, y
}
