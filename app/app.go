// Package app wires the kernel, the services and the calculator task onto
// a HAL.
package app

import (
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/services/input"
	"sparkcalc/sparkos/services/logger"
	"sparkcalc/sparkos/services/timesvc"
	"sparkcalc/sparkos/tasks/calculator"
)

type system struct {
	k *kernel.Kernel
}

// New starts the calculator on h and returns the per-frame step hook used by
// the host runners.
func New(h hal.HAL) func() error {
	_ = newSystem(h)
	return func() error { return nil }
}

// Run starts the calculator and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

func newSystem(h hal.HAL) *system {
	if l := h.Logger(); l != nil {
		l.WriteLineString(buildinfo.Banner())
	}

	k := kernel.New()
	installPanicHandler(k, h)

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	timeEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(timesvc.New(timeEP))
	k.AddTask(calculator.New(
		h.Display(),
		h.Readout(),
		calcEP,
		logEP.Restrict(kernel.RightSend),
		timeEP.Restrict(kernel.RightSend),
	))
	k.AddTask(input.New(h.Input(), calcEP.Restrict(kernel.RightSend)))

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}
}
