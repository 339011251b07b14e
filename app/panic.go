package app

import (
	"fmt"
	"strings"

	"sparkcalc/hal"
	"sparkcalc/sparkos/gfx"
	"sparkcalc/sparkos/kernel"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// installPanicHandler reports the first task panic on every output h has
// and leaves it on screen.
func installPanicHandler(k *kernel.Kernel, h hal.HAL) {
	k.OnPanic(func(info kernel.PanicInfo) {
		lines := panicLines(info)

		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}
		if r := h.Readout(); r != nil {
			r.SetLines(lines[:2])
		}

		disp := h.Display()
		if disp == nil {
			return
		}
		fb := disp.Framebuffer()
		if fb == nil {
			return
		}

		gfx.Clear(fb, gfx.Hex(0x000000))
		term := tinyterm.NewTerminal(gfx.NewDisplay(fb))
		term.Configure(&tinyterm.Config{
			Font:       &proggy.TinySZ8pt7b,
			FontHeight: 10,
			FontOffset: 6,
		})
		_, _ = term.Write([]byte(strings.Join(lines, "\r\n")))
		_ = fb.Present()
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		fmt.Sprintf("Calculator panic: task=%d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}
	return lines
}
