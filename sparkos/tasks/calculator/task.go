// Package calculator is the calculator task: it feeds key presses and
// button clicks into a calc.State, draws the two display lines and the
// button grid, and clears an "Error" result after calc.ErrorClearDelay.
package calculator

import (
	"time"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	logclient "sparkcalc/sparkos/client/logger"
	timeclient "sparkcalc/sparkos/client/time"
	"sparkcalc/sparkos/gfx"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const (
	defaultWidth  = 320
	defaultHeight = 320
)

type Task struct {
	disp    hal.Display
	readout hal.Readout

	// ep receives input and timer replies; it needs both rights.
	ep      kernel.Capability
	logCap  kernel.Capability
	timeCap kernel.Capability

	fb     hal.Framebuffer
	screen *gfx.Display
	lay    layout
	fonts  fontSet

	state calc.State
	shown calc.Display
	tape  tape
	inbuf []byte

	nextTimerID uint32
	clearTimers map[uint32]struct{}
}

// New creates the calculator task. disp and readout may be nil.
func New(disp hal.Display, readout hal.Readout, ep, logCap, timeCap kernel.Capability) *Task {
	return &Task{
		disp:        disp,
		readout:     readout,
		ep:          ep,
		logCap:      logCap,
		timeCap:     timeCap,
		state:       calc.New(),
		clearTimers: make(map[uint32]struct{}),
	}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}

	t.initScreen()
	t.shown = t.state.Render()
	t.present(ctx)
	t.log(ctx, "calc: ready")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			t.handleMessage(ctx, msg)
		}
	}
}

func (t *Task) initScreen() {
	w, h := defaultWidth, defaultHeight
	if t.disp != nil {
		t.fb = t.disp.Framebuffer()
	}
	if t.fb != nil && t.fb.Format() == hal.PixelFormatRGB565 {
		w, h = t.fb.Width(), t.fb.Height()
		t.screen = gfx.NewDisplay(t.fb)
		t.fonts = newFontSet()
	} else {
		t.fb = nil
	}
	t.lay = newLayout(w, h)
}

func (t *Task) handleMessage(ctx *kernel.Context, msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgTermInput:
		t.handleInput(ctx, msg.Payload())

	case proto.MsgPointer:
		pt, ok := proto.DecodePointer(msg.Payload())
		if !ok || !pt.Press {
			return
		}
		t.handleClick(ctx, int(pt.X), int(pt.Y))

	case proto.MsgWake, proto.MsgError:
		id, ok, err := timeclient.Fired(msg)
		if err != nil {
			t.logf(ctx, "calc: error timer: %v", err)
		}
		if !ok {
			return
		}
		if _, pending := t.clearTimers[id]; !pending {
			return
		}
		delete(t.clearTimers, id)
		if err == nil {
			t.apply(ctx, calc.ClearAll())
		}
	}
}

func (t *Task) handleInput(ctx *kernel.Context, b []byte) {
	t.inbuf = append(t.inbuf, b...)
	buf := t.inbuf
	for len(buf) > 0 {
		n, k, ok := nextKey(buf)
		if !ok {
			break
		}
		buf = buf[n:]
		t.handleKey(ctx, k)
	}
	t.inbuf = append(t.inbuf[:0], buf...)
}

func (t *Task) handleKey(ctx *kernel.Context, k key) {
	switch k.kind {
	case keyTab, keyF1:
		t.tape.toggle()
		t.present(ctx)
		return
	}
	if ev, ok := eventForKey(k); ok {
		t.apply(ctx, ev)
	}
}

func (t *Task) handleClick(ctx *kernel.Context, x, y int) {
	if t.tape.visible {
		if t.lay.grid.Contains(x, y) {
			t.tape.toggle()
			t.present(ctx)
		}
		return
	}
	if b, ok := t.lay.hit(x, y); ok {
		t.apply(ctx, b.ev)
	}
}

// apply runs one event through the state machine and redraws.
func (t *Task) apply(ctx *kernel.Context, ev calc.Event) {
	d, out := t.state.Apply(ev)
	t.shown = d

	if line := t.tape.record(out); line != "" {
		t.log(ctx, "calc: "+line)
	}
	if out.Fault != nil {
		t.logf(ctx, "calc: %v", out.Fault)
		t.scheduleClear(ctx)
	}
	t.present(ctx)
}

// scheduleClear arms a one-shot ClearAll. Later input does not cancel it.
func (t *Task) scheduleClear(ctx *kernel.Context) {
	t.nextTimerID++
	id := t.nextTimerID
	dt := uint32(calc.ErrorClearDelay / time.Millisecond)
	if err := timeclient.After(ctx, t.timeCap, t.ep.Restrict(kernel.RightSend), id, dt); err != nil {
		t.logf(ctx, "calc: schedule clear: %v", err)
		return
	}
	t.clearTimers[id] = struct{}{}
}

// present shows the current lines unless a panic report owns the outputs.
func (t *Task) present(ctx *kernel.Context) {
	if ctx.Panicking() {
		return
	}
	t.render()
	if t.readout != nil {
		t.readout.SetLines([]string{t.shown.Expression, t.shown.Result})
	}
}

func (t *Task) log(ctx *kernel.Context, line string) {
	_ = logclient.Log(ctx, t.logCap, line)
}

func (t *Task) logf(ctx *kernel.Context, format string, args ...any) {
	_ = logclient.Logf(ctx, t.logCap, format, args...)
}
