package hal

import "time"

// tickerTime is a free-running millisecond tick source for boards where
// the Go runtime owns the hardware timer.
type tickerTime struct {
	ch   chan uint64
	seq  uint64
	stop chan struct{}
}

func newTickerTime() *tickerTime {
	t := &tickerTime{ch: make(chan uint64, 16), stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(time.Second / TickRate)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				t.seq++
				publishTick(t.ch, t.seq)
			}
		}
	}()
	return t
}

func (t *tickerTime) Ticks() <-chan uint64 { return t.ch }

func (t *tickerTime) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

func (t *tickerTime) Close() error {
	close(t.stop)
	return nil
}

// publishTick sends seq without blocking, discarding the oldest queued
// value when the reader has fallen behind.
func publishTick(ch chan uint64, seq uint64) {
	for {
		select {
		case ch <- seq:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
