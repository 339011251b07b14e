package hal

// The PicoCalc keyboard MCU answers each FIFO read (command 0x09 at I2C
// address 0x1F) with a two-byte report: state, then key code.
const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd  byte   = 0x09

	picoCalcStatePress   byte = 0x01
	picoCalcStateRelease byte = 0x03
)

const (
	picoCalcKeyBackspace byte = 0x08
	picoCalcKeyF1        byte = 0x81
	picoCalcKeyF2        byte = 0x82
	picoCalcKeyF3        byte = 0x83
	picoCalcKeyAlt       byte = 0xA1
	picoCalcKeyCtrl      byte = 0xA5
	picoCalcKeyEsc       byte = 0xB1
	picoCalcKeyLeft      byte = 0xB4
	picoCalcKeyUp        byte = 0xB5
	picoCalcKeyDown      byte = 0xB6
	picoCalcKeyRight     byte = 0xB7
	picoCalcKeyIns       byte = 0xD1
	picoCalcKeyHome      byte = 0xD2
	picoCalcKeyDel       byte = 0xD4
	picoCalcKeyEnd       byte = 0xD5
)

var picoCalcSpecial = map[byte]KeyCode{
	picoCalcKeyBackspace: KeyBackspace,
	picoCalcKeyEsc:       KeyEscape,
	picoCalcKeyDel:       KeyDelete,
	picoCalcKeyHome:      KeyHome,
	picoCalcKeyEnd:       KeyEnd,
	picoCalcKeyLeft:      KeyLeft,
	picoCalcKeyRight:     KeyRight,
	picoCalcKeyUp:        KeyUp,
	picoCalcKeyDown:      KeyDown,
	picoCalcKeyF1:        KeyF1,
	picoCalcKeyF2:        KeyF2,
	picoCalcKeyF3:        KeyF3,
	picoCalcKeyIns:       KeyTab,
	'\r':                 KeyEnter,
	'\n':                 KeyEnter,
	'\t':                 KeyTab,
}

// decodePicoCalcReport turns one FIFO report into a key event. Idle and
// hold reports, modifiers, and releases of text keys produce nothing; key
// repeat is the input service's job.
func decodePicoCalcReport(report [2]byte) (KeyEvent, bool) {
	var press bool
	switch report[0] {
	case picoCalcStatePress:
		press = true
	case picoCalcStateRelease:
	default:
		return KeyEvent{}, false
	}

	code := report[1]
	switch code {
	case 0, picoCalcKeyAlt, picoCalcKeyCtrl:
		return KeyEvent{}, false
	}
	if kc, ok := picoCalcSpecial[code]; ok {
		return KeyEvent{Code: kc, Press: press}, true
	}
	if !press || code < 0x20 || code >= 0x7f {
		return KeyEvent{}, false
	}
	return KeyEvent{Press: true, Rune: rune(code)}, true
}
