//go:build linux && !tinygo

package hal

import (
	"fmt"
	"sync"

	evdev "github.com/holoplot/go-evdev"
)

// EvdevKeys maps key or button codes onto console buttons.
var EvdevKeys = map[evdev.EvCode]ButtonID{
	evdev.KEY_Z:      ButtonSW1,
	evdev.KEY_J:      ButtonSW1,
	evdev.BTN_SOUTH:  ButtonSW1,
	evdev.KEY_X:      ButtonSW2,
	evdev.KEY_K:      ButtonSW2,
	evdev.BTN_EAST:   ButtonSW2,
	evdev.KEY_ENTER:  ButtonSelect,
	evdev.KEY_SPACE:  ButtonSelect,
	evdev.BTN_START:  ButtonSelect,
	evdev.BTN_SELECT: ButtonSelect,
}

// EvdevInput turns a Linux input device (gamepad or keyboard) into
// console input. Absolute X/Y axes become the joystick; arrow keys
// push it to the rails when the device has no axes.
type EvdevInput struct {
	dev *evdev.InputDevice

	mu     sync.Mutex
	down   [NumButtons]bool
	arrows [4]bool // up, down, left, right
	axes   [2]evdevAxis
	err    error
}

type evdevAxis struct {
	seen    bool
	min     int32
	max     int32
	value   int32
	present bool
}

// OpenEvdev opens the device at path, or the first device whose name
// matches when path does not start with "/". The device is grabbed so
// key presses don't leak into the console.
func OpenEvdev(path string) (*EvdevInput, error) {
	if len(path) == 0 || path[0] != '/' {
		p, err := findEvdev(path)
		if err != nil {
			return nil, err
		}
		path = p
	}
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evdev: open %s: %w", path, err)
	}
	if err := dev.Grab(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("evdev: grab %s: %w", path, err)
	}

	in := &EvdevInput{dev: dev}
	if infos, err := dev.AbsInfos(); err == nil {
		for i, code := range [2]evdev.EvCode{evdev.ABS_X, evdev.ABS_Y} {
			if ai, ok := infos[code]; ok {
				in.axes[i] = evdevAxis{present: true, min: ai.Minimum, max: ai.Maximum, value: ai.Value, seen: true}
			}
		}
	}
	go in.run()
	return in, nil
}

func findEvdev(name string) (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("evdev: list devices: %w", err)
	}
	for _, ip := range paths {
		if name == "" || ip.Name == name {
			return ip.Path, nil
		}
	}
	return "", fmt.Errorf("evdev: no device named %q", name)
}

func (in *EvdevInput) run() {
	for {
		ev, err := in.dev.ReadOne()
		if err != nil {
			in.mu.Lock()
			in.err = err
			in.mu.Unlock()
			return
		}
		in.apply(ev.Type, ev.Code, ev.Value)
	}
}

func (in *EvdevInput) apply(typ evdev.EvType, code evdev.EvCode, value int32) {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch typ {
	case evdev.EV_KEY:
		// 2 is autorepeat; it keeps the key down.
		pressed := value != 0
		if id, ok := EvdevKeys[code]; ok {
			in.down[id] = pressed
			return
		}
		switch code {
		case evdev.KEY_UP, evdev.KEY_W:
			in.arrows[0] = pressed
		case evdev.KEY_DOWN, evdev.KEY_S:
			in.arrows[1] = pressed
		case evdev.KEY_LEFT, evdev.KEY_A:
			in.arrows[2] = pressed
		case evdev.KEY_RIGHT, evdev.KEY_D:
			in.arrows[3] = pressed
		}
	case evdev.EV_ABS:
		switch code {
		case evdev.ABS_X:
			in.axes[0].value, in.axes[0].seen = value, true
		case evdev.ABS_Y:
			in.axes[1].value, in.axes[1].seen = value, true
		}
	}
}

func (in *EvdevInput) Button(id ButtonID) bool {
	if id >= NumButtons {
		return false
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.down[id]
}

// Joystick prefers held arrow keys over the absolute axes.
func (in *EvdevInput) Joystick() (x, y uint16) {
	in.mu.Lock()
	defer in.mu.Unlock()

	kx, ky := stickFromKeys(in.arrows[0], in.arrows[1], in.arrows[2], in.arrows[3])
	if kx != JoystickCenter || ky != JoystickCenter {
		return kx, ky
	}
	x, y = JoystickCenter, JoystickCenter
	if a := in.axes[0]; a.present && a.seen {
		x = scaleAxis(a.value, a.min, a.max)
	}
	if a := in.axes[1]; a.present && a.seen {
		y = scaleAxis(a.value, a.min, a.max)
	}
	return x, y
}

func (in *EvdevInput) Err() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.err
}

func (in *EvdevInput) Close() error {
	in.dev.Ungrab()
	return in.dev.Close()
}
