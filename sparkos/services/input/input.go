// Package input turns HAL keyboard and pointer events into messages for the
// focused task: VT100 byte sequences (MsgTermInput) and clicks (MsgPointer).
package input

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const (
	// Ticks are 1ms on host and TinyGo.
	repeatDelayTicks = 350
	repeatRateTicks  = 60
)

type Service struct {
	in     hal.Input
	outCap kernel.Capability

	pending []byte

	heldCode       hal.KeyCode
	heldData       []byte
	nextRepeatTick uint64
}

// New forwards input from in to outCap.
func New(in hal.Input, outCap kernel.Capability) *Service {
	return &Service{in: in, outCap: outCap}
}

func (s *Service) Run(ctx *kernel.Context) {
	if s.in == nil {
		return
	}

	var keys <-chan hal.KeyEvent
	if kbd := s.in.Keyboard(); kbd != nil {
		keys = kbd.Events()
	}
	var clicks <-chan hal.PointerEvent
	if ptr := s.in.Pointer(); ptr != nil {
		clicks = ptr.Events()
	}
	if keys == nil && clicks == nil {
		return
	}

	done := make(chan struct{})
	defer close(done)

	tickCh := make(chan uint64, 16)
	go func() {
		last := ctx.NowTick()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			default:
			}
			last = ctx.WaitTick(last)
			select {
			case tickCh <- last:
			default:
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			s.handleKeyEvent(ctx, ev)
		case ev, ok := <-clicks:
			if !ok {
				clicks = nil
				continue
			}
			s.handlePointer(ctx, ev)
		case tick := <-tickCh:
			s.handleRepeat(tick)
			s.flush(ctx)
		}
	}
}

func (s *Service) handlePointer(ctx *kernel.Context, ev hal.PointerEvent) {
	if !s.outCap.Valid() {
		return
	}
	payload := proto.Pointer{X: int16(ev.X), Y: int16(ev.Y), Press: ev.Press}.Encode()
	_ = ctx.SendToCapRetry(s.outCap, uint16(proto.MsgPointer), payload, kernel.Capability{}, 4)
}

func (s *Service) handleKeyEvent(ctx *kernel.Context, ev hal.KeyEvent) {
	if !ev.Press {
		if s.heldData != nil && ev.Code == s.heldCode {
			s.heldData = nil
			s.nextRepeatTick = 0
		}
		return
	}

	data := vt100FromKey(ev)
	if len(data) == 0 {
		return
	}
	s.pending = append(s.pending, data...)
	s.flush(ctx)

	if !repeatableKey(ev) {
		return
	}
	s.heldCode = ev.Code
	s.heldData = append(s.heldData[:0], data...)
	s.nextRepeatTick = ctx.NowTick() + repeatDelayTicks
}

func (s *Service) handleRepeat(tick uint64) {
	if s.heldData == nil || tick < s.nextRepeatTick {
		return
	}
	s.pending = append(s.pending, s.heldData...)
	s.nextRepeatTick = tick + repeatRateTicks
}

func (s *Service) flush(ctx *kernel.Context) {
	if len(s.pending) == 0 {
		return
	}
	if !s.outCap.Valid() {
		s.pending = nil
		return
	}

	chunk := s.pending
	if len(chunk) > kernel.MaxMessageBytes {
		chunk = chunk[:kernel.MaxMessageBytes]
	}

	switch ctx.SendToCapResult(s.outCap, uint16(proto.MsgTermInput), chunk, kernel.Capability{}) {
	case kernel.SendOK:
		s.pending = s.pending[len(chunk):]
	case kernel.SendErrQueueFull:
		// Retried on the next tick.
	default:
		s.pending = nil
	}
}

// Only editing keys repeat; a held digit or operator would be a surprise.
func repeatableKey(ev hal.KeyEvent) bool {
	switch ev.Code {
	case hal.KeyBackspace, hal.KeyDelete:
		return true
	default:
		return false
	}
}

var vt100Keys = map[hal.KeyCode]string{
	hal.KeyEnter:     "\n",
	hal.KeyEscape:    "\x1b",
	hal.KeyBackspace: "\x7f",
	hal.KeyTab:       "\t",
	hal.KeyUp:        "\x1b[A",
	hal.KeyDown:      "\x1b[B",
	hal.KeyRight:     "\x1b[C",
	hal.KeyLeft:      "\x1b[D",
	hal.KeyDelete:    "\x1b[3~",
	hal.KeyHome:      "\x1b[H",
	hal.KeyEnd:       "\x1b[F",
	hal.KeyF1:        "\x1b[11~",
	hal.KeyF2:        "\x1b[12~",
	hal.KeyF3:        "\x1b[13~",
}

func vt100FromKey(ev hal.KeyEvent) []byte {
	if ev.Rune != 0 {
		return []byte(string(ev.Rune))
	}
	if s, ok := vt100Keys[ev.Code]; ok {
		return []byte(s)
	}
	return nil
}
