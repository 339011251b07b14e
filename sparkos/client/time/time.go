// Package time is the client side of the time service: one-shot timers whose
// wakeups arrive on the caller's own endpoint, so a task can keep serving
// other messages while a timer is pending.
package time

import (
	"fmt"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// After asks the time service to send MsgWake(requestID) to reply after dt
// ticks. reply must carry the send right.
func After(ctx *kernel.Context, timeCap, reply kernel.Capability, requestID uint32, dt uint32) error {
	if ctx == nil {
		return fmt.Errorf("time after: nil context")
	}
	if !reply.Valid() {
		return fmt.Errorf("time after: invalid reply capability")
	}
	res := ctx.SendToCapRetry(timeCap, uint16(proto.MsgSleep), proto.Sleep{RequestID: requestID, Ticks: dt}.Encode(), reply, 8)
	if res != kernel.SendOK {
		return fmt.Errorf("time after send: %s", res)
	}
	return nil
}

// Fired decodes a reply from the time service. It reports the request ID and
// an error when the service rejected the request.
func Fired(msg kernel.Message) (requestID uint32, ok bool, err error) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgWake:
		w, ok := proto.DecodeWake(msg.Payload())
		if !ok {
			return 0, false, fmt.Errorf("time wake: bad payload")
		}
		return w.RequestID, true, nil

	case proto.MsgError:
		f, ok := proto.DecodeFault(msg.Payload())
		if !ok {
			return 0, false, fmt.Errorf("time error: bad payload")
		}
		return f.RequestID, true, fmt.Errorf("time error: %w", f)

	default:
		return 0, false, nil
	}
}
