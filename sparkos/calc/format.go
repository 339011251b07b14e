package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatResult prints an evaluation result.
//
// Exact integers print in full. Floats are rounded to ResultDigits decimal
// places; integral values print without a fractional part ("10", not
// "10.0") and others use the shortest form that round-trips, switching to
// exponent notation below 1e-4 ("1e-05").
func FormatResult(n Number) (string, error) {
	if n.IsInt() {
		s := n.i.String()
		if len(strings.TrimPrefix(s, "-")) > maxIntDigits {
			return "", fmt.Errorf("%w: result exceeds %d digits", ErrEvaluation, maxIntDigits)
		}
		return s, nil
	}

	v := n.f
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", fmt.Errorf("%w: result is not finite", ErrEvaluation)
	}

	r, err := roundDecimal(v, ResultDigits)
	if err != nil {
		return "", err
	}
	if r == 0 {
		// Drop the sign of negative zero.
		r = 0
	}

	if r == math.Trunc(r) {
		return strconv.FormatFloat(r, 'f', 0, 64), nil
	}
	if math.Abs(r) < 1e-4 {
		return strconv.FormatFloat(r, 'e', -1, 64), nil
	}
	return strconv.FormatFloat(r, 'f', -1, 64), nil
}

// roundDecimal rounds through the decimal representation so the result is
// the float nearest to the correctly rounded decimal, without the overflow
// that scaling by 10^digits would hit for large values.
func roundDecimal(v float64, digits int) (float64, error) {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: round %v: %v", ErrEvaluation, v, err)
	}
	return r, nil
}
