//go:build !tinygo

package hal

import "time"

// maxCatchUp bounds the ticks emitted for one step after a stall (window
// dragged, process suspended) so the time service sees a jump, not a burst.
const maxCatchUp = 250

// hostTime turns wall-clock time into 1ms ticks, advanced by the runner.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits the ticks that elapsed since the previous call (n on the first).
func (t *hostTime) step(n uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.emit(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / time.Millisecond)
	if ticks == 0 {
		return
	}
	t.acc %= time.Millisecond
	if ticks > maxCatchUp {
		t.seq += ticks - maxCatchUp
		ticks = maxCatchUp
	}
	t.emit(ticks)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
