package calc

// Operator is one of the four arithmetic keys.
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Glyph returns the label shown on the key and in the expression line.
func (op Operator) Glyph() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// Symbol returns the character used in the evaluated expression.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return ""
	}
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// OperatorFromRune maps both the ASCII symbols and the display glyphs.
func OperatorFromRune(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-', '−':
		return OpSubtract, true
	case '*', '×':
		return OpMultiply, true
	case '/', '÷':
		return OpDivide, true
	default:
		return OpNone, false
	}
}

func isOperatorSymbol(b byte) bool {
	return b == '+' || b == '-' || b == '*' || b == '/'
}
