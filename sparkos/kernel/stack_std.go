//go:build !tinygo

package kernel

import (
	"bytes"
	"runtime/debug"
)

// panicStack returns the goroutine stack starting at the function that
// panicked. The goroutine header is kept; the recovery frames are not.
func panicStack() []byte {
	stack := debug.Stack()
	lines := bytes.Split(stack, []byte("\n"))
	for i, line := range lines {
		if !bytes.HasPrefix(line, []byte("panic(")) || i+2 > len(lines) {
			continue
		}
		kept := append([][]byte{lines[0]}, lines[i+2:]...)
		return bytes.Join(kept, []byte("\n"))
	}
	return stack
}
