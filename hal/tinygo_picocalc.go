//go:build tinygo && baremetal && picocalc

package hal

import "machine"

// picoCalcSide is the square LCD's edge in pixels.
const picoCalcSide = 320

type picoCalcHAL struct {
	logger *uartLogger
	fb     *picoCalcFramebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns the PicoCalc HAL (Pico or Pico 2 on the PicoCalc carrier).
// Log lines go to UART0 on GP0/GP1 at 115200 8N1, including any device
// that failed to come up.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200, TX: machine.GP0, RX: machine.GP1})
	log := &uartLogger{uart: uart}

	fb := &picoCalcFramebuffer{buf: make([]byte, picoCalcSide*picoCalcSide*2)}
	if lcd, err := initILI9488(); err != nil {
		log.WriteLineString("hal: " + err.Error())
	} else {
		fb.lcd = lcd
		fb.dirty = newRowDiff(picoCalcSide)
	}

	var kbd Keyboard = &stubKeyboard{}
	if k, err := newPicoCalcKeyboard(); err != nil {
		log.WriteLineString("hal: " + err.Error())
	} else {
		kbd = k
	}

	return &picoCalcHAL{logger: log, fb: fb, kbd: kbd, t: newTinyGoTime()}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time       { return h.t }

// Readout is nil: the UART carries log lines only.
func (h *picoCalcHAL) Readout() Readout { return nil }

// picoCalcFramebuffer is an in-RAM RGB565 frame; Present sends the rows
// that changed. Without a panel it still accepts drawing.
type picoCalcFramebuffer struct {
	buf   []byte
	lcd   *ili9488
	dirty *rowDiff
}

func (f *picoCalcFramebuffer) Width() int          { return picoCalcSide }
func (f *picoCalcFramebuffer) Height() int         { return picoCalcSide }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return picoCalcSide * 2 }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) {
	px := rgb565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i], f.buf[i+1] = byte(px), byte(px>>8)
	}
}

func (f *picoCalcFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	first, last, ok := f.dirty.band(f.buf, f.StrideBytes())
	if !ok {
		return nil
	}
	if err := f.lcd.blitRows(f.buf, picoCalcSide, first, last); err != nil {
		f.dirty.forget()
		return err
	}
	return nil
}
