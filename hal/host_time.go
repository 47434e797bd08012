//go:build !tinygo

package hal

import "time"

type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

func newHostTime() *hostTime {
	return &hostTime{
		ch:    make(chan uint64, 1024),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	t.sleep(d)
}

// step converts the wall time elapsed since the previous call into ticks.
// The first call only emits n ticks to start the stream.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Second / TickRate
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	t.seq += n
	publishTick(t.ch, t.seq)
}
