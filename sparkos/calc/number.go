package calc

import (
	"fmt"
	"math"
	"math/big"
)

// maxIntDigits bounds integer literals and results, matching the digit
// limit Python applies when converting between int and str.
const maxIntDigits = 4300

// maxIntBits bounds intermediate integers. Four bits per digit is more
// than any maxIntDigits-digit value needs.
const maxIntBits = 4 * maxIntDigits

// Number is an evaluation result. Integer operands combine exactly as
// arbitrary-precision integers; a decimal operand or a division turns the
// result into a float64.
type Number struct {
	i *big.Int
	f float64
}

// Int returns an exact integer Number.
func Int(v int64) Number { return Number{i: big.NewInt(v)} }

// Float returns a float64 Number.
func Float(v float64) Number { return Number{f: v} }

// IsInt reports whether n is an exact integer.
func (n Number) IsInt() bool { return n.i != nil }

func (n Number) String() string {
	if n.i != nil {
		return n.i.String()
	}
	return fmt.Sprint(n.f)
}

func (n Number) isZero() bool {
	if n.i != nil {
		return n.i.Sign() == 0
	}
	return n.f == 0
}

func (n Number) neg() Number {
	if n.i != nil {
		return Number{i: new(big.Int).Neg(n.i)}
	}
	return Number{f: -n.f}
}

// float converts n, rounding to nearest. Integers beyond the float64 range
// are a fault.
func (n Number) float() (float64, error) {
	if n.i == nil {
		return n.f, nil
	}
	f, _ := new(big.Float).SetInt(n.i).Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: integer too large to convert to float", ErrEvaluation)
	}
	return f, nil
}

func parseInt(text string) (Number, error) {
	if len(text) > maxIntDigits {
		return Number{}, fmt.Errorf("%w: integer literal exceeds %d digits", ErrEvaluation, maxIntDigits)
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Number{}, fmt.Errorf("%w: bad integer %q", ErrEvaluation, text)
	}
	return Number{i: i}, nil
}

// combine applies + - * or / to a and b.
func combine(op tokenKind, a, b Number) (Number, error) {
	if op == tokSlash {
		return divide(a, b)
	}

	if a.IsInt() && b.IsInt() {
		r := new(big.Int)
		switch op {
		case tokPlus:
			r.Add(a.i, b.i)
		case tokMinus:
			r.Sub(a.i, b.i)
		case tokStar:
			r.Mul(a.i, b.i)
		}
		if r.BitLen() > maxIntBits {
			return Number{}, fmt.Errorf("%w: integer result too large", ErrEvaluation)
		}
		return Number{i: r}, nil
	}

	x, err := a.float()
	if err != nil {
		return Number{}, err
	}
	y, err := b.float()
	if err != nil {
		return Number{}, err
	}
	switch op {
	case tokPlus:
		return Float(x + y), nil
	case tokMinus:
		return Float(x - y), nil
	default:
		return Float(x * y), nil
	}
}

// divide is true division: the quotient is always a float. Two integers
// divide exactly before the single rounding to float64.
func divide(a, b Number) (Number, error) {
	if b.isZero() {
		return Number{}, fmt.Errorf("%w: division by zero", ErrEvaluation)
	}
	if a.IsInt() && b.IsInt() {
		f, _ := new(big.Rat).SetFrac(a.i, b.i).Float64()
		if math.IsInf(f, 0) {
			return Number{}, fmt.Errorf("%w: quotient too large for a float", ErrEvaluation)
		}
		return Float(f), nil
	}

	x, err := a.float()
	if err != nil {
		return Number{}, err
	}
	y, err := b.float()
	if err != nil {
		return Number{}, err
	}
	return Float(x / y), nil
}
