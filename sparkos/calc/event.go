package calc

import "fmt"

// EventKind enumerates the inputs the calculator understands. Button clicks
// and key presses produce the same events.
type EventKind uint8

const (
	EvNone EventKind = iota
	EvDigit
	EvDecimalPoint
	EvOperator
	EvEquals
	EvClearAll
	EvClearEntry
	EvBackspace
)

func (k EventKind) String() string {
	switch k {
	case EvDigit:
		return "digit"
	case EvDecimalPoint:
		return "decimal_point"
	case EvOperator:
		return "operator"
	case EvEquals:
		return "equals"
	case EvClearAll:
		return "clear_all"
	case EvClearEntry:
		return "clear_entry"
	case EvBackspace:
		return "backspace"
	default:
		return "none"
	}
}

// Event is one input. Digit is set for EvDigit, Op for EvOperator.
type Event struct {
	Kind  EventKind
	Digit rune
	Op    Operator
}

func Digit(d rune) Event { return Event{Kind: EvDigit, Digit: d} }
func DecimalPoint() Event { return Event{Kind: EvDecimalPoint} }
func OperatorEvent(op Operator) Event { return Event{Kind: EvOperator, Op: op} }
func Equals() Event { return Event{Kind: EvEquals} }
func ClearAll() Event { return Event{Kind: EvClearAll} }
func ClearEntry() Event { return Event{Kind: EvClearEntry} }
func Backspace() Event { return Event{Kind: EvBackspace} }

func (e Event) String() string {
	switch e.Kind {
	case EvDigit:
		return fmt.Sprintf("digit(%c)", e.Digit)
	case EvOperator:
		return fmt.Sprintf("operator(%s)", e.Op.Glyph())
	default:
		return e.Kind.String()
	}
}

// Apply dispatches ev to the matching operation. The Outcome is only
// populated for EvEquals.
func (s *State) Apply(ev Event) (Display, Outcome) {
	switch ev.Kind {
	case EvDigit:
		return s.EnterDigit(ev.Digit), Outcome{}
	case EvDecimalPoint:
		return s.EnterDecimalPoint(), Outcome{}
	case EvOperator:
		return s.EnterOperator(ev.Op), Outcome{}
	case EvEquals:
		return s.Calculate()
	case EvClearAll:
		return s.ClearAll(), Outcome{}
	case EvClearEntry:
		return s.ClearEntry(), Outcome{}
	case EvBackspace:
		return s.DeleteLast(), Outcome{}
	default:
		return s.Render(), Outcome{}
	}
}

// EventForRune maps a typed character to an event: digits, '.', the four
// operators (ASCII or glyph) and '='.
func EventForRune(r rune) (Event, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Digit(r), true
	case r == '.':
		return DecimalPoint(), true
	case r == '=':
		return Equals(), true
	}
	if op, ok := OperatorFromRune(r); ok {
		return OperatorEvent(op), true
	}
	return Event{}, false
}
