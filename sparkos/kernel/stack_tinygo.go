//go:build tinygo

package kernel

// TinyGo has no goroutine stack dump.
func panicStack() []byte { return nil }
