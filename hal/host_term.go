//go:build !tinygo && unix

package hal

import (
	"context"
	"fmt"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// Terminal key presses have no release event, so each one holds its
// control for this long.
const termHold = 150 * time.Millisecond

// TermKeys reads a raw-mode terminal and feeds the console controls.
// Keys: arrows or WASD move the stick, z/j is SW1, x/k is SW2, Enter or
// Space is SEL, q or Ctrl-C quits.
type TermKeys struct {
	in  *hostInput
	dec termDecoder

	fd       int
	oldState *term.State
	nonblock bool

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	quit     chan struct{}
	quitOnce sync.Once
}

func NewTermKeys(in *hostInput) *TermKeys {
	return &TermKeys{
		in:     in,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
	}
}

// Start puts fd in raw non-blocking mode and begins reading in a goroutine.
// Call Stop to restore the terminal.
func (k *TermKeys) Start(fd int) error {
	k.fd = fd
	if !term.IsTerminal(fd) {
		close(k.done)
		return fmt.Errorf("term keys: fd %d is not a terminal", fd)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		close(k.done)
		return fmt.Errorf("term keys: raw mode: %w", err)
	}
	k.oldState = oldState

	if err := syscall.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, k.oldState)
		k.oldState = nil
		close(k.done)
		return fmt.Errorf("term keys: nonblocking stdin: %w", err)
	}
	k.nonblock = true

	go k.loop()
	return nil
}

func (k *TermKeys) loop() {
	defer close(k.done)
	buf := make([]byte, 16)

	for {
		select {
		case <-k.stopCh:
			return
		default:
		}

		n, err := syscall.Read(k.fd, buf)
		for _, b := range buf[:max(n, 0)] {
			k.apply(k.dec.feed(b))
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func (k *TermKeys) apply(a termAction) {
	switch a.kind {
	case termButton:
		k.in.latchButton(a.button, termHold)
	case termStick:
		k.in.latchJoystick(a.x, a.y, termHold)
	case termQuit:
		k.quitOnce.Do(func() { close(k.quit) })
	}
}

// WithQuit returns a context that is cancelled when the quit key is read.
func (k *TermKeys) WithQuit(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		defer cancel()
		select {
		case <-k.quit:
		case <-ctx.Done():
		}
	}()
	return ctx
}

// Stop terminates the reader and restores the terminal.
func (k *TermKeys) Stop() {
	k.stopped.Do(func() {
		close(k.stopCh)
	})
	<-k.done
	if k.nonblock {
		_ = syscall.SetNonblock(k.fd, false)
		k.nonblock = false
	}
	if k.oldState != nil {
		_ = term.Restore(k.fd, k.oldState)
		k.oldState = nil
	}
}
