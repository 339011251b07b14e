package gfx

import (
	"image/color"

	"sparkcalc/hal"

	"tinygo.org/x/drivers"
)

// Display exposes a region of a framebuffer as a drivers.Displayer.
// Coordinates are relative to the region origin and clipped to it.
//
// It also carries the FillRectangle/SetScroll/SetRotation methods tinyterm
// expects from its displays.
type Display struct {
	fb     hal.Framebuffer
	bounds Rect
}

// NewDisplay covers the whole framebuffer.
func NewDisplay(fb hal.Framebuffer) *Display {
	if fb == nil {
		return &Display{}
	}
	return &Display{fb: fb, bounds: Rect{X1: fb.Width(), Y1: fb.Height()}}
}

// NewRegion covers r only.
func NewRegion(fb hal.Framebuffer, r Rect) *Display {
	return &Display{fb: fb, bounds: r}
}

// Bounds returns the covered region in framebuffer coordinates.
func (d *Display) Bounds() Rect { return d.bounds }

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.bounds.Dx()), int16(d.bounds.Dy())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix := d.bounds.X0 + int(x)
	iy := d.bounds.Y0 + int(y)
	if !d.bounds.Contains(ix, iy) {
		return
	}
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := RGB565(c)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display presents the whole framebuffer.
func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := Rect{
		X0: d.bounds.X0 + int(x),
		Y0: d.bounds.Y0 + int(y),
		X1: d.bounds.X0 + int(x) + int(width),
		Y1: d.bounds.Y0 + int(y) + int(height),
	}
	r.X0 = clampInt(r.X0, d.bounds.X0, d.bounds.X1)
	r.X1 = clampInt(r.X1, d.bounds.X0, d.bounds.X1)
	r.Y0 = clampInt(r.Y0, d.bounds.Y0, d.bounds.Y1)
	r.Y1 = clampInt(r.Y1, d.bounds.Y0, d.bounds.Y1)
	FillRect(d.fb, r, c)
	return nil
}

// SetScroll is a no-op: framebuffers have no hardware scroll.
func (d *Display) SetScroll(line int16) {
	_ = line
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

var _ drivers.Displayer = (*Display)(nil)
