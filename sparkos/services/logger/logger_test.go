package logger

import (
	"sync"
	"testing"
	"time"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

type memLogger struct {
	mu    sync.Mutex
	lines []string
	ch    chan struct{}
}

func (l *memLogger) WriteLineString(s string) { l.WriteLineBytes([]byte(s)) }

func (l *memLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	l.lines = append(l.lines, string(b))
	l.mu.Unlock()
	l.ch <- struct{}{}
}

type sendTask struct {
	to kernel.Capability
}

func (t sendTask) Run(ctx *kernel.Context) {
	ctx.SendToCapResult(t.to, uint16(proto.MsgSleep), nil, kernel.Capability{})
	ctx.SendToCapResult(t.to, uint16(proto.MsgLogLine), proto.LogLinePayload([]byte("calc: 7 + 3 = 10")), kernel.Capability{})
}

func TestServiceWritesLogLinesOnly(t *testing.T) {
	k := kernel.New()
	defer k.Stop()

	sink := &memLogger{ch: make(chan struct{}, 4)}
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(New(sink, ep.Restrict(kernel.RightRecv)))
	k.AddTask(sendTask{to: ep.Restrict(kernel.RightSend)})

	select {
	case <-sink.ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for log line")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.lines) != 1 || sink.lines[0] != "calc: 7 + 3 = 10" {
		t.Fatalf("lines=%q", sink.lines)
	}
}
