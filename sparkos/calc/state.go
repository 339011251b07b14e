package calc

import (
	"strings"
	"time"
)

const (
	// ErrorText replaces the operand after a failed evaluation.
	ErrorText = "Error"

	// ErrorClearDelay is how long "Error" stays up before a full clear.
	ErrorClearDelay = 2000 * time.Millisecond

	// ResultDigits is the number of decimal places results are rounded to.
	ResultDigits = 10
)

// State is the whole calculator: the operand being typed, at most one
// pending "operand op" fragment, and whether the next digit starts over.
//
// Pending holds evaluation symbols (+ - * /); Render maps them to glyphs.
type State struct {
	Current string
	Pending string
	Reset   bool
}

// Display is what the two visible lines show.
type Display struct {
	Expression string
	Result     string
}

// Outcome describes what Calculate did.
type Outcome struct {
	// Evaluated is false when there was no pending expression.
	Evaluated bool
	// Expr is the expression that was evaluated, in evaluation symbols.
	Expr string
	// Result is the new operand: a formatted number or ErrorText.
	Result string
	// Fault is non-nil when evaluation failed; it wraps ErrEvaluation.
	Fault error
}

// New returns the startup state ("0", "", false).
func New() State {
	return State{Current: "0"}
}

// EnterDigit appends d to the operand, replacing a lone "0".
func (s *State) EnterDigit(d rune) Display {
	if d < '0' || d > '9' {
		return s.Render()
	}
	s.consumeReset()
	if s.Current == "0" {
		s.Current = string(d)
	} else {
		s.Current += string(d)
	}
	return s.Render()
}

// EnterDecimalPoint appends "." unless the operand already has one.
func (s *State) EnterDecimalPoint() Display {
	s.consumeReset()
	if !strings.Contains(s.Current, ".") {
		s.Current += "."
	}
	return s.Render()
}

// EnterOperator folds the operand into the pending expression, or swaps the
// pending operator when one is already waiting for its right operand.
func (s *State) EnterOperator(op Operator) Display {
	sym := op.Symbol()
	if sym == "" {
		return s.Render()
	}
	s.Reset = false

	switch {
	case s.Pending != "" && !endsInOperator(s.Pending):
		s.Pending += " " + s.Current + " " + sym
		s.Current = "0"
	case s.Pending != "":
		s.Pending = s.Pending[:len(s.Pending)-1] + sym
	default:
		s.Pending = s.Current + " " + sym
		s.Current = "0"
	}
	return s.Render()
}

// Calculate evaluates the pending expression against the current operand.
//
// On failure the operand becomes ErrorText and the returned Outcome carries
// the fault; the caller owns the delayed ClearAll (ErrorClearDelay).
func (s *State) Calculate() (Display, Outcome) {
	if s.Pending == "" {
		return s.Render(), Outcome{}
	}

	expr := s.Pending + " " + s.Current
	out := Outcome{Evaluated: true, Expr: expr}

	v, err := Eval(expr)
	if err == nil {
		out.Result, err = FormatResult(v)
	}
	if err != nil {
		out.Result = ErrorText
		out.Fault = err
	}

	s.Current = out.Result
	s.Pending = ""
	s.Reset = true
	return s.Render(), out
}

// ClearAll restores the startup state.
func (s *State) ClearAll() Display {
	*s = New()
	return s.Render()
}

// ClearEntry resets only the operand.
func (s *State) ClearEntry() Display {
	s.Current = "0"
	return s.Render()
}

// DeleteLast removes the last operand character. Right after a result it
// clears everything instead.
func (s *State) DeleteLast() Display {
	if s.Reset {
		return s.ClearAll()
	}
	if len(s.Current) > 1 {
		s.Current = s.Current[:len(s.Current)-1]
	} else {
		s.Current = "0"
	}
	return s.Render()
}

// Render returns both display lines. It does not modify s.
func (s State) Render() Display {
	return Display{
		Expression: glyphReplacer.Replace(s.Pending),
		Result:     s.Current,
	}
}

var glyphReplacer = strings.NewReplacer(
	"-", OpSubtract.Glyph(),
	"*", OpMultiply.Glyph(),
	"/", OpDivide.Glyph(),
)

func (s *State) consumeReset() {
	if !s.Reset {
		return
	}
	s.Current = "0"
	s.Pending = ""
	s.Reset = false
}

func endsInOperator(expr string) bool {
	return expr != "" && isOperatorSymbol(expr[len(expr)-1])
}
