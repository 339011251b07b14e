package calculator

import (
	"sync"
	"testing"
	"time"

	"sparkcalc/hal"
	"sparkcalc/sparkos/gfx"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
	"sparkcalc/sparkos/services/timesvc"
)

type memFramebuffer struct {
	w, h int
	buf  []byte
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8)  {}
func (f *memFramebuffer) Present() error          { return nil }

func (f *memFramebuffer) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type memDisplay struct{ fb hal.Framebuffer }

func (d memDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type memReadout struct {
	mu      sync.Mutex
	updates [][2]string
}

func (r *memReadout) SetLines(lines []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var u [2]string
	copy(u[:], lines)
	r.updates = append(r.updates, u)
}

func (r *memReadout) snapshot() (n int, last [2]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.updates) == 0 {
		return 0, last
	}
	return len(r.updates), r.updates[len(r.updates)-1]
}

type feed struct {
	kind    proto.Kind
	payload []byte
}

// feeder forwards test input to the calculator endpoint.
type feeder struct {
	to kernel.Capability
	in chan feed
}

func (f *feeder) Run(ctx *kernel.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-f.in:
			ctx.SendToCapRetry(f.to, uint16(m.kind), m.payload, kernel.Capability{}, 100)
		}
	}
}

type harness struct {
	k    *kernel.Kernel
	fb   *memFramebuffer
	out  *memReadout
	in   chan feed
	tick uint64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	k := kernel.New()
	t.Cleanup(k.Stop)

	timeEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(timesvc.New(timeEP))

	h := &harness{
		k:   k,
		fb:  newMemFramebuffer(320, 320),
		out: &memReadout{},
		in:  make(chan feed, 16),
	}
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(New(memDisplay{fb: h.fb}, h.out, calcEP, kernel.Capability{}, timeEP.Restrict(kernel.RightSend)))
	k.AddTask(&feeder{to: calcEP.Restrict(kernel.RightSend), in: h.in})

	h.waitUpdates(t, 1)
	return h
}

func (h *harness) typeKeys(s string) {
	h.in <- feed{kind: proto.MsgTermInput, payload: []byte(s)}
}

func (h *harness) click(x, y int) {
	h.in <- feed{kind: proto.MsgPointer, payload: proto.Pointer{X: int16(x), Y: int16(y), Press: true}.Encode()}
	h.in <- feed{kind: proto.MsgPointer, payload: proto.Pointer{X: int16(x), Y: int16(y)}.Encode()}
}

func (h *harness) waitUpdates(t *testing.T, n int) [2]string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got, last := h.out.snapshot(); got >= n {
			return last
		}
		time.Sleep(time.Millisecond)
	}
	got, _ := h.out.snapshot()
	t.Fatalf("timed out waiting for %d readout updates, got %d", n, got)
	return [2]string{}
}

// waitLines waits for the readout to show want; with advance set it also
// moves the system tick forward.
func (h *harness) waitLines(t *testing.T, want [2]string, advance bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	var last [2]string
	for time.Now().Before(deadline) {
		if _, last = h.out.snapshot(); last == want {
			return
		}
		if advance {
			h.tick += 20
			h.k.TickTo(h.tick)
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("readout=%q, want %q", last, want)
}

func TestTaskKeyboardAddition(t *testing.T) {
	h := newHarness(t)

	h.typeKeys("7+3")
	h.waitLines(t, [2]string{"7 +", "3"}, false)

	h.typeKeys("\n")
	h.waitLines(t, [2]string{"", "10"}, false)
}

func TestTaskSplitEscapeSequence(t *testing.T) {
	h := newHarness(t)

	h.typeKeys("12+34")
	h.waitLines(t, [2]string{"12 +", "34"}, false)

	h.typeKeys("\x1b[")
	h.typeKeys("3~")
	h.waitLines(t, [2]string{"12 +", "0"}, false)
}

func TestTaskErrorClearsAfterDelay(t *testing.T) {
	h := newHarness(t)

	h.typeKeys("5/0=")
	h.waitLines(t, [2]string{"", "Error"}, false)

	h.waitLines(t, [2]string{"", "0"}, true)
	if h.tick < 2000 {
		t.Fatalf("cleared at tick %d, before the delay", h.tick)
	}
}

// The clear scheduled by a fault is not cancelled by later input, so it
// wipes whatever was typed after the Error.
func TestTaskErrorClearWipesLaterInput(t *testing.T) {
	h := newHarness(t)

	h.typeKeys("5/0=")
	h.waitLines(t, [2]string{"", "Error"}, false)

	h.typeKeys("7")
	h.waitLines(t, [2]string{"", "7"}, false)

	h.waitLines(t, [2]string{"", "0"}, true)
	if h.tick < 2000 {
		t.Fatalf("cleared at tick %d, before the delay", h.tick)
	}
}

func TestTaskClicksAndTape(t *testing.T) {
	h := newHarness(t)
	l := newLayout(320, 320)

	for _, label := range []string{"9", "×", "9", "="} {
		x, y := center(t, &l, label)
		h.click(x, y)
	}
	h.waitLines(t, [2]string{"", "81"}, false)

	accent := gfx.RGB565(colorAccent)
	if got := h.fb.pixel(l.panel.X0, l.panel.Y0); got != accent {
		t.Fatalf("panel border pixel=%#04x, want %#04x", got, accent)
	}
	clearBG := gfx.RGB565(classColors[classClear].bg)
	cx, cy := l.buttons[0].rect.X0+1, l.buttons[0].rect.Y0+1
	if got := h.fb.pixel(cx, cy); got != clearBG {
		t.Fatalf("C button pixel=%#04x, want %#04x", got, clearBG)
	}

	n, _ := h.out.snapshot()
	h.typeKeys("\t")
	h.waitUpdates(t, n+1)
	if got := h.fb.pixel(cx, cy); got != 0 {
		t.Fatalf("tape background pixel=%#04x, want 0", got)
	}

	h.click(cx, cy)
	h.waitUpdates(t, n+2)
	if got := h.fb.pixel(cx, cy); got != clearBG {
		t.Fatalf("after closing tape pixel=%#04x, want %#04x", got, clearBG)
	}
	if _, last := h.out.snapshot(); last != [2]string{"", "81"} {
		t.Fatalf("closing the tape changed the display: %q", last)
	}
}
