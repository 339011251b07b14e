package proto

import (
	"encoding/binary"
	"fmt"
)

// All payloads are fixed-width little-endian records. Decoders accept
// trailing bytes so a record can grow without breaking older readers.
var le = binary.LittleEndian

// LogLinePayload copies one UTF-8 log line, without its newline.
func LogLinePayload(b []byte) []byte {
	return append([]byte(nil), b...)
}

// Sleep is a MsgSleep request: wake RequestID after Ticks kernel ticks.
type Sleep struct {
	RequestID uint32
	Ticks     uint32
}

func (s Sleep) Encode() []byte {
	b := make([]byte, 0, 8)
	b = le.AppendUint32(b, s.RequestID)
	return le.AppendUint32(b, s.Ticks)
}

func DecodeSleep(p []byte) (Sleep, bool) {
	if len(p) < 8 {
		return Sleep{}, false
	}
	return Sleep{RequestID: le.Uint32(p[0:4]), Ticks: le.Uint32(p[4:8])}, true
}

// Wake answers a Sleep with its request ID.
type Wake struct {
	RequestID uint32
}

func (w Wake) Encode() []byte {
	return le.AppendUint32(make([]byte, 0, 4), w.RequestID)
}

func DecodeWake(p []byte) (Wake, bool) {
	if len(p) < 4 {
		return Wake{}, false
	}
	return Wake{RequestID: le.Uint32(p[0:4])}, true
}

// Fault is the MsgError reply to a request of kind Ref. RequestID is zero
// when the request could not be decoded.
type Fault struct {
	Code      ErrCode
	Ref       Kind
	RequestID uint32
}

func (f Fault) Encode() []byte {
	b := make([]byte, 0, 8)
	b = le.AppendUint16(b, uint16(f.Code))
	b = le.AppendUint16(b, uint16(f.Ref))
	return le.AppendUint32(b, f.RequestID)
}

func (f Fault) Error() string {
	return fmt.Sprintf("%s request %d: %s", f.Ref, f.RequestID, f.Code)
}

func DecodeFault(p []byte) (Fault, bool) {
	if len(p) < 8 {
		return Fault{}, false
	}
	return Fault{
		Code:      ErrCode(le.Uint16(p[0:2])),
		Ref:       Kind(le.Uint16(p[2:4])),
		RequestID: le.Uint32(p[4:8]),
	}, true
}

// Pointer is a primary-button press or release in framebuffer pixels.
type Pointer struct {
	X, Y  int16
	Press bool
}

func (pt Pointer) Encode() []byte {
	b := make([]byte, 0, 5)
	b = le.AppendUint16(b, uint16(pt.X))
	b = le.AppendUint16(b, uint16(pt.Y))
	if pt.Press {
		return append(b, 1)
	}
	return append(b, 0)
}

func DecodePointer(p []byte) (Pointer, bool) {
	if len(p) < 5 {
		return Pointer{}, false
	}
	return Pointer{
		X:     int16(le.Uint16(p[0:2])),
		Y:     int16(le.Uint16(p[2:4])),
		Press: p[4] != 0,
	}, true
}
