//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

// Pointer is nil: the PicoCalc has no touch panel.
func (in tinyGoInput) Pointer() Pointer { return nil }

// stubKeyboard stands in when the keyboard MCU does not answer. Its nil
// channel never delivers.
type stubKeyboard struct {
	ch chan KeyEvent
}

func (k *stubKeyboard) Events() <-chan KeyEvent { return k.ch }

// tinyGoTime emits one tick per millisecond from a hardware timer. Ticks
// are dropped rather than queued when the kernel falls behind.
type tinyGoTime struct {
	ch chan uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go t.run()
	return t
}

func (t *tinyGoTime) run() {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	var seq uint64
	for range ticker.C {
		seq++
		select {
		case t.ch <- seq:
		default:
		}
	}
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

var crlf = []byte("\r\n")

// uartLogger writes CRLF-terminated lines for serial terminals.
type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) { l.WriteLineBytes([]byte(s)) }

func (l *uartLogger) WriteLineBytes(b []byte) {
	_, _ = l.uart.Write(b)
	_, _ = l.uart.Write(crlf)
}
