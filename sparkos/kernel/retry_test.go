package kernel

import (
	"testing"
	"time"
)

func fillEndpoint(t *testing.T, ctx *Context, to Capability) {
	t.Helper()
	for i := 0; i < endpointSlots; i++ {
		if res := ctx.SendToCapResult(to, uint16(i), nil, Capability{}); res != SendOK {
			t.Fatalf("send %d while filling: %s", i, res)
		}
	}
}

func TestEndpointQueueIsBoundedFIFO(t *testing.T) {
	if endpointSlots != 8 {
		t.Fatalf("endpointSlots=%d, want 8", endpointSlots)
	}
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	fillEndpoint(t, ctx, ep.Restrict(RightSend))
	if res := ctx.SendToCapResult(ep.Restrict(RightSend), 99, nil, Capability{}); res != SendErrQueueFull {
		t.Fatalf("ninth send: %s, want %s", res, SendErrQueueFull)
	}
	for i := 0; i < endpointSlots; i++ {
		msg, ok := ctx.TryRecv(ep.Restrict(RightRecv))
		if !ok || msg.Kind != uint16(i) {
			t.Fatalf("recv %d: kind=%d ok=%v", i, msg.Kind, ok)
		}
	}
	if _, ok := ctx.TryRecv(ep.Restrict(RightRecv)); ok {
		t.Fatal("queue should be empty")
	}
}

func TestMessagePayloadClampsLen(t *testing.T) {
	msg := Message{Len: MaxMessageBytes + 10}
	if got := len(msg.Payload()); got != MaxMessageBytes {
		t.Fatalf("payload len=%d, want %d", got, MaxMessageBytes)
	}
}

func TestSendToCapRetry(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		drain bool
		want  SendResult
	}{
		{name: "zero limit", limit: 0, want: SendErrQueueFull},
		{name: "limit reached", limit: 2, want: SendErrQueueFull},
		{name: "room after drain", limit: 50, drain: true, want: SendOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := New()
			defer k.Stop()
			ep := k.NewEndpoint(RightSend | RightRecv)
			ctx := &Context{k: k, taskID: 1}
			fillEndpoint(t, ctx, ep.Restrict(RightSend))

			res := make(chan SendResult, 1)
			go func() { res <- ctx.SendToCapRetry(ep.Restrict(RightSend), 1, nil, Capability{}, tt.limit) }()

			if tt.drain {
				ctx.TryRecv(ep.Restrict(RightRecv))
			}
			var tick uint64
			deadline := time.After(time.Second)
			for {
				select {
				case got := <-res:
					if got != tt.want {
						t.Fatalf("SendToCapRetry=%s, want %s", got, tt.want)
					}
					return
				case <-deadline:
					t.Fatal("SendToCapRetry did not return")
				case <-time.After(time.Millisecond):
					tick++
					k.TickTo(tick)
				}
			}
		})
	}
}

func TestSendToCapRetryStopsWithKernel(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}
	fillEndpoint(t, ctx, ep.Restrict(RightSend))

	res := make(chan SendResult, 1)
	go func() { res <- ctx.SendToCapRetry(ep.Restrict(RightSend), 1, nil, Capability{}, 1000) }()

	time.Sleep(5 * time.Millisecond)
	k.Stop()
	select {
	case got := <-res:
		if got != SendErrQueueFull {
			t.Fatalf("SendToCapRetry after Stop=%s", got)
		}
	case <-time.After(time.Second):
		t.Fatal("SendToCapRetry kept waiting after Stop")
	}
}
