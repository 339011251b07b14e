// Package timesvc answers MsgSleep requests with a MsgWake once the
// requested number of ticks has passed.
package timesvc

import (
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const maxSleepers = 32

type sleeper struct {
	inUse bool
	due   uint64
	id    uint32
	reply kernel.Capability
}

type Service struct {
	ep kernel.Capability

	now      uint64
	sleepers [maxSleepers]sleeper
}

// New serves sleep requests received on ep (needs send and receive rights).
func New(ep kernel.Capability) *Service {
	return &Service{ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	in, ok := ctx.RecvChan(s.ep)
	if !ok {
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

	s.now = ctx.NowTick()
	for {
		select {
		case <-ctx.Done():
			return
		case tick := <-tickCh:
			if tick > s.now {
				s.now = tick
			}
			s.wakeReady(ctx)
		case msg, ok := <-in:
			if !ok {
				return
			}
			s.handle(ctx, msg)
		}
	}
}

func (s *Service) handle(ctx *kernel.Context, msg kernel.Message) {
	if proto.Kind(msg.Kind) != proto.MsgSleep || !msg.Cap.Valid() {
		return
	}

	req, ok := proto.DecodeSleep(msg.Payload())
	if !ok {
		s.fail(ctx, msg.Cap, proto.ErrBadMessage, 0)
		return
	}
	if req.Ticks == 0 && s.wake(ctx, msg.Cap, req.RequestID) {
		return
	}
	if !s.schedule(s.now+uint64(req.Ticks), req.RequestID, msg.Cap) {
		s.fail(ctx, msg.Cap, proto.ErrOverflow, req.RequestID)
	}
}

func (s *Service) fail(ctx *kernel.Context, reply kernel.Capability, code proto.ErrCode, requestID uint32) {
	payload := proto.Fault{Code: code, Ref: proto.MsgSleep, RequestID: requestID}.Encode()
	_ = ctx.Send(s.ep, reply, uint16(proto.MsgError), payload)
}

func (s *Service) schedule(due uint64, requestID uint32, reply kernel.Capability) bool {
	for i := range s.sleepers {
		if s.sleepers[i].inUse {
			continue
		}
		s.sleepers[i] = sleeper{inUse: true, due: due, id: requestID, reply: reply}
		return true
	}
	return false
}

func (s *Service) wakeReady(ctx *kernel.Context) {
	for i := range s.sleepers {
		sl := &s.sleepers[i]
		if !sl.inUse || sl.due > s.now {
			continue
		}
		if !s.wake(ctx, sl.reply, sl.id) {
			continue
		}
		*sl = sleeper{}
	}
}

// wake reports false only when the reply queue is full; the sleeper then
// stays armed and is retried on the next tick.
func (s *Service) wake(ctx *kernel.Context, reply kernel.Capability, requestID uint32) bool {
	res := ctx.SendCapResult(s.ep, reply, uint16(proto.MsgWake), proto.Wake{RequestID: requestID}.Encode(), kernel.Capability{})
	return res != kernel.SendErrQueueFull
}
