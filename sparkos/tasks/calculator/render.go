package calculator

import (
	"image/color"

	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/fonts/keypad"
	"sparkcalc/sparkos/gfx"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

type fontSet struct {
	expression *keypad.Font
	result     *keypad.Font
	button     *keypad.Font
}

func newFontSet() fontSet {
	return fontSet{
		expression: keypad.New(&freesans.Regular9pt7b),
		result:     keypad.New(&freesans.Bold18pt7b),
		button:     keypad.New(&freesans.Bold12pt7b),
	}
}

func (t *Task) render() {
	if t.fb == nil {
		return
	}

	gfx.Clear(t.fb, colorBackground)
	t.renderPanel(t.shown)
	if t.tape.visible {
		t.tape.draw(t.fb, t.lay.grid)
	} else {
		t.renderGrid()
	}
	_ = t.fb.Present()
}

func (t *Task) renderPanel(d calc.Display) {
	gfx.FillRect(t.fb, t.lay.panel, colorPanel)
	gfx.StrokeRect(t.fb, t.lay.panel, panelBorder, colorAccent)

	r := t.lay.text
	exprBase := r.Y0 + capHeight(t.fonts.expression)
	resultBase := r.Y1 - 2

	drawRight(t.screen, t.fonts.expression, r, exprBase, d.Expression, colorAccent)
	drawRight(t.screen, t.fonts.result, r, resultBase, d.Result, colorAccent)
}

func (t *Task) renderGrid() {
	for i := range t.lay.buttons {
		b := &t.lay.buttons[i]
		p := classColors[b.class]
		gfx.FillRect(t.fb, b.rect, p.bg)

		w := textWidth(t.fonts.button, b.label)
		x := b.rect.X0 + (b.rect.Dx()-w)/2
		y := b.rect.Y0 + (b.rect.Dy()+capHeight(t.fonts.button))/2
		tinyfont.WriteLine(t.screen, t.fonts.button, int16(x), int16(y), b.label, p.fg)
	}
}

// drawRight right-aligns s in r on baseline y, dropping leading runes that
// do not fit so the least significant digits stay visible.
func drawRight(d *gfx.Display, f tinyfont.Fonter, r gfx.Rect, y int, s string, c color.RGBA) {
	s = fitLeft(f, s, r.Dx())
	if s == "" {
		return
	}
	x := r.X1 - textWidth(f, s)
	tinyfont.WriteLine(d, f, int16(x), int16(y), s, c)
}

func fitLeft(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	r := []rune(s)
	for len(r) > 0 && textWidth(f, string(r)) > maxW {
		r = r[1:]
	}
	return string(r)
}

func textWidth(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}

// capHeight is the height of a digit above the baseline.
func capHeight(f tinyfont.Fonter) int {
	return int(f.GetGlyph('0').Info().Height)
}
