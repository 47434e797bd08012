//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Host panel geometry matches the reference 132x132 glass.
const (
	HostPanelWidth  = 132
	HostPanelHeight = 132
)

type hostHAL struct {
	logger *hostLogger
	panel  *Panel
	in     *hostInput
	t      *hostTime
}

// New returns a host HAL: a simulated panel, keyboard-driven input and a
// wall-clock tick source.
func New() HAL {
	return newHostHAL()
}

func newHostHAL() *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		panel:  NewPanel(HostPanelWidth, HostPanelHeight),
		in:     newHostInput(time.Now),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.panel }
func (h *hostHAL) Input() Input     { return h.in }
func (h *hostHAL) Time() Time       { return h.t }

// Panel exposes the simulated glass for mirrors and snapshots.
func (h *hostHAL) Panel() *Panel { return h.panel }

// PanelOf returns the simulated panel behind h, if h is a host HAL.
func PanelOf(h HAL) (*Panel, bool) {
	p, ok := h.(interface{ Panel() *Panel })
	if !ok {
		return nil, false
	}
	return p.Panel(), true
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
