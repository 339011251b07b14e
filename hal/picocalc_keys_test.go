package hal

import "testing"

func TestDecodePicoCalcReport(t *testing.T) {
	tests := []struct {
		name   string
		report [2]byte
		want   KeyEvent
		ok     bool
	}{
		{name: "digit", report: [2]byte{picoCalcStatePress, '7'}, want: KeyEvent{Press: true, Rune: '7'}, ok: true},
		{name: "operator", report: [2]byte{picoCalcStatePress, '*'}, want: KeyEvent{Press: true, Rune: '*'}, ok: true},
		{name: "digit release", report: [2]byte{picoCalcStateRelease, '7'}},
		{name: "enter", report: [2]byte{picoCalcStatePress, '\r'}, want: KeyEvent{Code: KeyEnter, Press: true}, ok: true},
		{name: "esc", report: [2]byte{picoCalcStatePress, picoCalcKeyEsc}, want: KeyEvent{Code: KeyEscape, Press: true}, ok: true},
		{name: "backspace release", report: [2]byte{picoCalcStateRelease, picoCalcKeyBackspace}, want: KeyEvent{Code: KeyBackspace}, ok: true},
		{name: "del", report: [2]byte{picoCalcStatePress, picoCalcKeyDel}, want: KeyEvent{Code: KeyDelete, Press: true}, ok: true},
		{name: "f1", report: [2]byte{picoCalcStatePress, picoCalcKeyF1}, want: KeyEvent{Code: KeyF1, Press: true}, ok: true},
		{name: "modifier", report: [2]byte{picoCalcStatePress, picoCalcKeyAlt}},
		{name: "idle", report: [2]byte{0, 0}},
		{name: "hold", report: [2]byte{0x02, '7'}},
		{name: "control byte", report: [2]byte{picoCalcStatePress, 0x05}},
	}
	for _, tt := range tests {
		got, ok := decodePicoCalcReport(tt.report)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("%s: got %+v ok=%v, want %+v ok=%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
