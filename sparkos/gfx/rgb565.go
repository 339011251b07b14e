// Package gfx draws into RGB565 framebuffers and adapts them to the
// tinygo drivers Displayer interface used by tinyfont and tinyterm.
package gfx

import (
	"image/color"

	"sparkcalc/hal"
)

// RGB565 packs an 8-bit-per-channel colour.
func RGB565(c color.RGBA) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

// Hex returns an opaque colour from 0xRRGGBB.
func Hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// Rect is a pixel rectangle; X1/Y1 are exclusive.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

func (r Rect) Dx() int { return r.X1 - r.X0 }
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Inset shrinks r by n pixels on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X0: r.X0 + n, Y0: r.Y0 + n, X1: r.X1 - n, Y1: r.Y1 - n}
	if out.X1 < out.X0 {
		out.X1 = out.X0
	}
	if out.Y1 < out.Y0 {
		out.Y1 = out.Y0
	}
	return out
}

// Clear fills the whole framebuffer.
func Clear(fb hal.Framebuffer, c color.RGBA) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := fb.Buffer()
	pixel := RGB565(c)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

// FillRect fills r, clipped to the framebuffer.
func FillRect(fb hal.Framebuffer, r Rect, c color.RGBA) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := fb.Buffer()
	if buf == nil {
		return
	}

	x0 := clampInt(r.X0, 0, fb.Width())
	y0 := clampInt(r.Y0, 0, fb.Height())
	x1 := clampInt(r.X1, 0, fb.Width())
	y1 := clampInt(r.Y1, 0, fb.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := RGB565(c)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := fb.StrideBytes()
	for y := y0; y < y1; y++ {
		row := y * stride
		for x := x0; x < x1; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// StrokeRect draws an outline of the given thickness inside r.
func StrokeRect(fb hal.Framebuffer, r Rect, thickness int, c color.RGBA) {
	if thickness <= 0 {
		return
	}
	FillRect(fb, Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0 + thickness}, c)
	FillRect(fb, Rect{X0: r.X0, Y0: r.Y1 - thickness, X1: r.X1, Y1: r.Y1}, c)
	FillRect(fb, Rect{X0: r.X0, Y0: r.Y0, X1: r.X0 + thickness, Y1: r.Y1}, c)
	FillRect(fb, Rect{X0: r.X1 - thickness, Y0: r.Y0, X1: r.X1, Y1: r.Y1}, c)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
