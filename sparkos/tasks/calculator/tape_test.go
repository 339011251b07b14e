package calculator

import (
	"errors"
	"fmt"
	"testing"

	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/gfx"
)

func TestTapeRecord(t *testing.T) {
	var tp tape
	if got := tp.record(calc.Outcome{}); got != "" || len(tp.lines) != 0 {
		t.Fatalf("unevaluated outcome recorded %q", got)
	}

	got := tp.record(calc.Outcome{Evaluated: true, Expr: "7 + 3", Result: "10"})
	if got != "7 + 3 = 10" {
		t.Fatalf("record=%q", got)
	}
	got = tp.record(calc.Outcome{Evaluated: true, Expr: "5 / 0", Result: calc.ErrorText, Fault: errors.New("x")})
	if got != "5 / 0 = Error" {
		t.Fatalf("record=%q", got)
	}
}

func TestTapeKeepsMostRecent(t *testing.T) {
	var tp tape
	for i := 0; i < maxTapeLines+5; i++ {
		tp.record(calc.Outcome{Evaluated: true, Expr: fmt.Sprintf("%d + 0", i), Result: fmt.Sprint(i)})
	}
	if len(tp.lines) != maxTapeLines {
		t.Fatalf("lines=%d, want %d", len(tp.lines), maxTapeLines)
	}
	if tp.lines[0] != "5 + 0 = 5" {
		t.Fatalf("oldest=%q", tp.lines[0])
	}

	tail := tp.tail(2)
	if len(tail) != 2 || tail[1] != fmt.Sprintf("%d + 0 = %d", maxTapeLines+4, maxTapeLines+4) {
		t.Fatalf("tail=%q", tail)
	}
	if tp.tail(0) != nil {
		t.Fatal("tail(0) should be empty")
	}
}

func TestTapeHomeCursor(t *testing.T) {
	for rows, want := range map[int]int{0: 0, 1: 0, 2: 0, 3: 1, 10: 8} {
		if got := len(homeCursor(rows)); got != want {
			t.Fatalf("homeCursor(%d) has %d line feeds, want %d", rows, got, want)
		}
	}
}

func TestTapeDrawsFromTopRow(t *testing.T) {
	fb := newMemFramebuffer(200, 120)
	r := gfx.Rect{X0: 0, Y0: 0, X1: 200, Y1: 108}
	if rows := tapeRows(r); rows != 10 {
		t.Fatalf("tapeRows=%d, want 10", rows)
	}

	var tp tape
	tp.record(calc.Outcome{Evaluated: true, Expr: "7 + 3", Result: "10"})
	tp.draw(fb, r)

	lit := func(row int) bool {
		y0 := 4 + row*tapeFontHeight
		for y := y0; y < y0+tapeFontHeight; y++ {
			for x := 4; x < 196; x++ {
				if fb.pixel(x, y) != 0 {
					return true
				}
			}
		}
		return false
	}
	if !lit(0) {
		t.Fatal("header not drawn on the top row")
	}
	if !lit(1) {
		t.Fatal("tape line not drawn below the header")
	}
	for row := 2; row < 10; row++ {
		if lit(row) {
			t.Fatalf("row %d drawn, want blank", row)
		}
	}
}
