package kernel

import "sync/atomic"

// PanicInfo describes the first task panic the kernel recovered.
type PanicInfo struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

// panicState latches the first task panic. Later panics are recovered and
// dropped so the handler runs once per kernel.
type panicState struct {
	latched atomic.Bool
	handler atomic.Pointer[func(PanicInfo)]
}

// OnPanic installs fn to receive the first task panic. Install it before
// AddTask. fn runs on the panicking task's goroutine and must not panic.
func (k *Kernel) OnPanic(fn func(PanicInfo)) {
	k.panics.handler.Store(&fn)
}

// Panicking reports whether a task has panicked.
func (k *Kernel) Panicking() bool {
	return k.panics.latched.Load()
}

// recoverTask must be deferred directly by the task goroutine.
func (k *Kernel) recoverTask(id TaskID) {
	r := recover()
	if r == nil {
		return
	}
	if !k.panics.latched.CompareAndSwap(false, true) {
		return
	}
	info := PanicInfo{TaskID: id, Value: r, Stack: panicStack()}
	if fn := k.panics.handler.Load(); fn != nil && *fn != nil {
		(*fn)(info)
	}
}
