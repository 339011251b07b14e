// Package keypad extends an ASCII tinyfont font with the calculator glyphs
// the Adafruit GFX fonts do not carry: − × ÷ and ⌫.
package keypad

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Minus     = '−'
	Times     = '×'
	Divide    = '÷'
	Backspace = '⌫'
)

// Font draws ASCII with Base and the calculator glyphs procedurally, sized
// from the base font's digit metrics.
type Font struct {
	Base tinyfont.Fonter

	metrics glyphMetrics
	ready   bool
	g       glyph
}

type glyphMetrics struct {
	advance uint8
	height  uint8
	stroke  int16
}

// New wraps base.
func New(base tinyfont.Fonter) *Font {
	return &Font{Base: base}
}

func (f *Font) GetYAdvance() uint8 { return f.Base.GetYAdvance() }

func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	switch r {
	case Minus, Times, Divide, Backspace:
	default:
		return f.Base.GetGlyph(r)
	}
	if !f.ready {
		f.metrics = measure(f.Base)
		f.ready = true
	}
	f.g = glyph{r: r, m: f.metrics}
	return &f.g
}

func measure(base tinyfont.Fonter) glyphMetrics {
	info := base.GetGlyph('0').Info()
	m := glyphMetrics{advance: info.XAdvance, height: info.Height}
	if m.advance < 4 {
		m.advance = 4
	}
	if m.height < 4 {
		m.height = 4
	}
	m.stroke = int16(m.height) / 8
	if m.stroke < 1 {
		m.stroke = 1
	}
	return m
}

type glyph struct {
	r rune
	m glyphMetrics
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	adv := g.m.advance
	if g.r == Backspace {
		adv = adv * 3 / 2
	}
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    adv,
		Height:   g.m.height,
		XAdvance: adv,
		XOffset:  0,
		YOffset:  -int8(g.m.height),
	}
}

// Draw paints the glyph with its baseline at y.
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	w := int16(g.Info().XAdvance)
	h := int16(g.m.height)
	t := g.m.stroke
	pad := w / 6
	left := x + pad
	right := x + w - pad - 1
	top := y - h
	midY := y - h/2

	switch g.r {
	case Minus:
		fill(display, left, midY-t/2, right-left+1, t, c)

	case Times:
		side := right - left
		if side > h {
			side = h
		}
		cx := (left + right) / 2
		x0 := cx - side/2
		y0 := midY - side/2
		line(display, x0, y0, x0+side, y0+side, t, c)
		line(display, x0, y0+side, x0+side, y0, t, c)

	case Divide:
		fill(display, left, midY-t/2, right-left+1, t, c)
		dot := t + 1
		cx := (left+right)/2 - dot/2
		gap := h / 4
		fill(display, cx, midY-t/2-gap-dot, dot, dot, c)
		fill(display, cx, midY+t/2+gap, dot, dot, c)

	case Backspace:
		// Left-pointing tag with a cross inside.
		tip := left
		body := left + h/2
		line(display, tip, midY, body, top+1, t, c)
		line(display, tip, midY, body, y-1, t, c)
		line(display, body, top+1, right, top+1, t, c)
		line(display, body, y-1, right, y-1, t, c)
		line(display, right, top+1, right, y-1, t, c)
		cx := (body + right) / 2
		arm := h / 5
		line(display, cx-arm, midY-arm, cx+arm, midY+arm, t, c)
		line(display, cx-arm, midY+arm, cx+arm, midY-arm, t, c)
	}
}

func fill(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	for j := int16(0); j < h; j++ {
		for i := int16(0); i < w; i++ {
			d.SetPixel(x+i, y+j, c)
		}
	}
}

// line draws a Bresenham line stamped with a t×t square.
func line(d drivers.Displayer, x0, y0, x1, y1, t int16, c color.RGBA) {
	dx := abs16(x1 - x0)
	dy := -abs16(y1 - y0)
	sx := int16(1)
	if x0 > x1 {
		sx = -1
	}
	sy := int16(1)
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fill(d, x0-t/2, y0-t/2, t, t, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
