package calculator

import (
	"image/color"

	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/fonts/keypad"
	"sparkcalc/sparkos/gfx"
)

type buttonClass uint8

const (
	classNumber buttonClass = iota
	classOperator
	classClear
	classEquals
)

type palette struct {
	bg, fg color.RGBA
}

var (
	colorBackground = gfx.Hex(0x0f0f0f)
	colorPanel      = gfx.Hex(0x1a1a1a)
	colorAccent     = gfx.Hex(0xff8c00)

	classColors = [...]palette{
		classNumber:   {bg: gfx.Hex(0x2a2a2a), fg: gfx.Hex(0xffffff)},
		classOperator: {bg: gfx.Hex(0xff8c00), fg: gfx.Hex(0x0f0f0f)},
		classClear:    {bg: gfx.Hex(0xff4444), fg: gfx.Hex(0xffffff)},
		classEquals:   {bg: gfx.Hex(0x00cc66), fg: gfx.Hex(0xffffff)},
	}
)

type buttonSpec struct {
	label string
	ev    calc.Event
	class buttonClass
	span  int
}

const (
	gridCols = 4
	gridRows = 5
)

var buttonRows = [gridRows][]buttonSpec{
	{
		{label: "C", ev: calc.ClearAll(), class: classClear},
		{label: "CE", ev: calc.ClearEntry(), class: classClear},
		{label: string(keypad.Backspace), ev: calc.Backspace(), class: classOperator},
		{label: string(keypad.Divide), ev: calc.OperatorEvent(calc.OpDivide), class: classOperator},
	},
	{digitButton('7'), digitButton('8'), digitButton('9'),
		{label: string(keypad.Times), ev: calc.OperatorEvent(calc.OpMultiply), class: classOperator}},
	{digitButton('4'), digitButton('5'), digitButton('6'),
		{label: string(keypad.Minus), ev: calc.OperatorEvent(calc.OpSubtract), class: classOperator}},
	{digitButton('1'), digitButton('2'), digitButton('3'),
		{label: "+", ev: calc.OperatorEvent(calc.OpAdd), class: classOperator}},
	{
		digitButton('0'),
		{label: ".", ev: calc.DecimalPoint(), class: classNumber},
		{label: "=", ev: calc.Equals(), class: classEquals, span: 2},
	},
}

func digitButton(d rune) buttonSpec {
	return buttonSpec{label: string(d), ev: calc.Digit(d), class: classNumber}
}

type button struct {
	buttonSpec
	rect gfx.Rect
}

// layout is the screen geometry: the display panel on top, the button grid
// below. The tape view reuses the grid area.
type layout struct {
	panel   gfx.Rect
	text    gfx.Rect
	grid    gfx.Rect
	buttons []button
}

const (
	screenMargin = 8
	panelHeight  = 92
	panelBorder  = 2
	buttonGap    = 4
)

func newLayout(w, h int) layout {
	var l layout
	l.panel = gfx.Rect{X0: screenMargin, Y0: screenMargin, X1: w - screenMargin, Y1: screenMargin + panelHeight}
	l.text = l.panel.Inset(panelBorder + 8)
	l.grid = gfx.Rect{X0: screenMargin, Y0: l.panel.Y1 + screenMargin, X1: w - screenMargin, Y1: h - screenMargin}

	cellW := (l.grid.Dx() - (gridCols-1)*buttonGap) / gridCols
	cellH := (l.grid.Dy() - (gridRows-1)*buttonGap) / gridRows
	if cellW <= 0 || cellH <= 0 {
		return l
	}

	for row, specs := range buttonRows {
		col := 0
		for _, spec := range specs {
			span := spec.span
			if span <= 0 {
				span = 1
			}
			x0 := l.grid.X0 + col*(cellW+buttonGap)
			y0 := l.grid.Y0 + row*(cellH+buttonGap)
			l.buttons = append(l.buttons, button{
				buttonSpec: spec,
				rect: gfx.Rect{
					X0: x0,
					Y0: y0,
					X1: x0 + span*cellW + (span-1)*buttonGap,
					Y1: y0 + cellH,
				},
			})
			col += span
		}
	}
	return l
}

// hit returns the button under (x, y). Gaps between buttons hit nothing.
func (l *layout) hit(x, y int) (*button, bool) {
	for i := range l.buttons {
		if l.buttons[i].rect.Contains(x, y) {
			return &l.buttons[i], true
		}
	}
	return nil, false
}
