package calc

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEvalPrecedence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "7 + 3", want: "10"},
		{in: "2 + 3 * 4", want: "14"},
		{in: "2 * 3 + 4", want: "10"},
		{in: "10 - 4 - 3", want: "3"},
		{in: "8 / 4 / 2", want: "1"},
		{in: "-2 + 5", want: "3"},
		{in: "2 - -3", want: "5"},
		{in: "2 * (3 + 4)", want: "14"},
		{in: "12. + 1", want: "13"},
		{in: "1e-05 * 100000", want: "1"},
		{in: "1 / 3", want: "0.3333333333"},
		{in: "0.1 + 0.2", want: "0.3"},
	}

	for _, tt := range tests {
		v, err := Eval(tt.in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		got, err := FormatResult(v)
		if err != nil {
			t.Fatalf("FormatResult(Eval(%q)) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Eval(%q)=%s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestEvalIntegersAreExact(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		exact bool
	}{
		{in: "12345678901234567 + 0", want: "12345678901234567", exact: true},
		{in: "99999999999999999 * 99999999999999999", want: "9999999999999999800000000000000001", exact: true},
		{in: "-9007199254740993 - 0", want: "-9007199254740993", exact: true},
		{in: "6 / 3", want: "2"},
		{in: "12345678901234567 + 0.0", want: "12345678901234568"},
	}
	for _, tt := range tests {
		v, err := Eval(tt.in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		if v.IsInt() != tt.exact {
			t.Fatalf("Eval(%q) IsInt=%v, want %v", tt.in, v.IsInt(), tt.exact)
		}
		got, err := FormatResult(v)
		if err != nil || got != tt.want {
			t.Fatalf("Eval(%q)=%q err=%v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestEvalFaults(t *testing.T) {
	for _, in := range []string{
		"5 / 0",
		"0 / 0",
		"5 / 0.0",
		"Error + 0",
		"2 +",
		"",
		"1 2",
		"(1 + 2",
		"2 34 +",
	} {
		if _, err := Eval(in); !errors.Is(err, ErrEvaluation) {
			t.Fatalf("Eval(%q) err=%v, want ErrEvaluation", in, err)
		}
	}
}

func TestEvalOverflowIsFault(t *testing.T) {
	big := "1" + strings.Repeat("0", 200)
	huge := "1" + strings.Repeat("0", 400)
	for _, in := range []string{
		"1e200 * 1e200",
		big + ".0 * " + big,
		huge + " / 1",
		huge + " * 1.5",
		strings.Repeat("9", maxIntDigits+1) + " + 0",
	} {
		if _, err := Eval(in); !errors.Is(err, ErrEvaluation) {
			t.Fatalf("Eval(%.20q...) err=%v, want ErrEvaluation", in, err)
		}
	}

	v, err := Eval(big + " * " + big)
	if err != nil {
		t.Fatalf("exact product error: %v", err)
	}
	if got, _ := FormatResult(v); got != huge {
		t.Fatalf("exact product has %d chars, want %d", len(got), len(huge))
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 10, want: "10"},
		{in: -2, want: "-2"},
		{in: 2.5, want: "2.5"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 1e-11, want: "0"},
		{in: 0.1 + 0.2, want: "0.3"},
		{in: 0.00012, want: "0.00012"},
		{in: 0.00005, want: "5e-05"},
		{in: 1e20, want: "100000000000000000000"},
		{in: 1.99999999999, want: "2"},
	}
	for _, tt := range tests {
		got, err := FormatResult(Float(tt.in))
		if err != nil {
			t.Fatalf("FormatResult(%v) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("FormatResult(%v)=%q, want %q", tt.in, got, tt.want)
		}
	}

	if got, err := FormatResult(Int(-42)); err != nil || got != "-42" {
		t.Fatalf("FormatResult(Int(-42))=%q err=%v", got, err)
	}
	if _, err := FormatResult(Float(math.Inf(1))); !errors.Is(err, ErrEvaluation) {
		t.Fatalf("FormatResult(+Inf) err=%v, want ErrEvaluation", err)
	}
}
