package calculator

import (
	"strings"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/gfx"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	maxTapeLines   = 64
	tapeFontHeight = 10
)

// tape keeps the completed calculations, oldest first, and prints them
// through a terminal when visible.
type tape struct {
	lines   []string
	visible bool
}

// record appends a line for an evaluated outcome and returns it.
func (tp *tape) record(out calc.Outcome) string {
	if !out.Evaluated {
		return ""
	}
	line := out.Expr + " = " + out.Result
	tp.lines = append(tp.lines, line)
	if len(tp.lines) > maxTapeLines {
		tp.lines = append(tp.lines[:0], tp.lines[len(tp.lines)-maxTapeLines:]...)
	}
	return line
}

func (tp *tape) toggle() { tp.visible = !tp.visible }

// draw replays the tape into r, header first and at most one screen of
// the most recent lines.
func (tp *tape) draw(fb hal.Framebuffer, r gfx.Rect) {
	gfx.FillRect(fb, r, gfx.Hex(0x000000))
	d := gfx.NewRegion(fb, r.Inset(4))

	term := tinyterm.NewTerminal(d)
	term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: tapeFontHeight,
		FontOffset: 6,
	})

	rows := tapeRows(r)
	var b strings.Builder
	b.WriteString(homeCursor(rows))
	b.WriteString("Tape (Tab to close)")
	for _, line := range tp.tail(rows - 1) {
		b.WriteString("\r\n")
		b.WriteString(line)
	}
	_, _ = term.Write([]byte(b.String()))
}

// homeCursor returns the line feeds that wrap a freshly configured
// terminal, which starts on its third row, back to the top row.
func homeCursor(rows int) string {
	if rows <= 2 {
		return ""
	}
	return strings.Repeat("\n", rows-2)
}

func tapeRows(r gfx.Rect) int {
	return (r.Dy() - 8) / tapeFontHeight
}
