//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

// lcdStep is one ILI9488 command with its parameters and settle time.
type lcdStep struct {
	op    byte
	args  []byte
	delay time.Duration
}

// ili9488Init brings the PicoCalc panel up in 16bpp, mirrored for the way
// it is mounted on the carrier.
var ili9488Init = []lcdStep{
	{op: 0xC0, args: []byte{0x17, 0x15}},             // power control 1
	{op: 0xC1, args: []byte{0x41}},                   // power control 2
	{op: 0xC5, args: []byte{0x00, 0x12, 0x80, 0x40}}, // VCOM
	{op: 0x3A, args: []byte{0x55}},                   // 16 bits per pixel
	{op: 0xB1, args: []byte{0xA0, 0x11}},             // frame rate
	{op: 0xB6, args: []byte{0x02, 0x22, 0x27}},       // 320 lines
	{op: 0x21},                                       // inversion on
	{op: 0x36, args: []byte{0x40 | 0x04 | 0x08}},     // MX, MH, BGR
	{op: 0x11, delay: 120 * time.Millisecond},        // sleep out
	{op: 0x29},                                       // display on
}

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	tx []byte
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("lcd: SPI1 unavailable")
	}
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	lcd := &ili9488{
		spi: *machine.SPI1,
		cs:  machine.GP13,
		dc:  machine.GP14,
		rst: machine.GP15,
		tx:  make([]byte, 4096),
	}
	for _, p := range []machine.Pin{lcd.cs, lcd.dc, lcd.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	lcd.rst.Low()
	time.Sleep(64 * time.Millisecond)
	lcd.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, s := range ili9488Init {
		lcd.command(s.op, s.args...)
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
	}
	return lcd, nil
}

func (d *ili9488) command(op byte, args ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{op}, nil)
	d.dc.High()
	if len(args) > 0 {
		d.spi.Tx(args, nil)
	}
	d.cs.High()
}

// blitRows pushes rows y0..y1 of a w-pixel wide little-endian RGB565 image.
// The panel wants big-endian pixels, so bytes are swapped through tx.
func (d *ili9488) blitRows(buf []byte, w, y0, y1 int) error {
	if w <= 0 || y0 < 0 || y1 < y0 || len(buf) < (y1+1)*w*2 {
		return errors.New("lcd blit: rows out of range")
	}

	d.command(0x2A, 0, 0, byte((w-1)>>8), byte(w-1))
	d.command(0x2B, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
	d.command(0x2C)

	d.cs.Low()
	d.dc.High()
	src := buf[y0*w*2 : (y1+1)*w*2]
	for len(src) > 0 {
		n := min(len(d.tx), len(src)) &^ 1
		for i := 0; i < n; i += 2 {
			d.tx[i], d.tx[i+1] = src[i+1], src[i]
		}
		d.spi.Tx(d.tx[:n], nil)
		src = src[n:]
	}
	d.cs.High()
	return nil
}
