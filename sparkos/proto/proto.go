// Package proto defines the message kinds and payload codecs exchanged
// between calculator tasks and services over kernel endpoints.
package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgSleep
	MsgWake
	MsgError
	MsgTermInput
	MsgPointer
)

var kindNames = map[Kind]string{
	MsgLogLine:   "log_line",
	MsgSleep:     "sleep",
	MsgWake:      "wake",
	MsgError:     "error",
	MsgTermInput: "term_input",
	MsgPointer:   "pointer",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ErrCode is a generic error category for MsgError responses.
type ErrCode uint16

const (
	ErrUnknown ErrCode = iota
	ErrBadMessage
	ErrUnauthorized
	ErrBusy
	ErrOverflow
	ErrInternal
)

func (c ErrCode) String() string {
	switch c {
	case ErrBadMessage:
		return "bad_message"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrBusy:
		return "busy"
	case ErrOverflow:
		return "overflow"
	case ErrInternal:
		return "internal"
	default:
		return "unknown"
	}
}
