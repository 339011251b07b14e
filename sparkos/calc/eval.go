package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrEvaluation is the only error the calculator reports.
var ErrEvaluation = errors.New("evaluation fault")

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+"}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-"}
	case '*':
		l.i++
		return token{kind: tokStar, text: "*"}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/"}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "("}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")"}
	}

	ch := l.s[l.i]
	if ch == '.' || isDigit(ch) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		return token{kind: tokNumber, text: l.s[start:l.i]}
	}

	start := l.i
	for l.i < len(l.s) && !unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	return token{kind: tokInvalid, text: l.s[start:l.i]}
}

// scanNumber accepts "12", "12.", ".5", "3.25" and an optional exponent
// ("1e-05"), which is how tiny results are printed and later chained.
func scanNumber(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

type parser struct {
	l   lexer
	cur token
}

// Eval evaluates an arithmetic expression with the usual precedence:
// * and / bind tighter than + and -, all left associative, with unary
// signs and parentheses. Any failure wraps ErrEvaluation.
func Eval(expr string) (Number, error) {
	p := &parser{l: lexer{s: expr}}
	p.next()

	v, err := p.parseSum()
	if err != nil {
		return Number{}, err
	}
	if p.cur.kind != tokEOF {
		return Number{}, fmt.Errorf("%w: unexpected %q", ErrEvaluation, p.cur.text)
	}
	if !v.IsInt() && (math.IsInf(v.f, 0) || math.IsNaN(v.f)) {
		return Number{}, fmt.Errorf("%w: result is not finite", ErrEvaluation)
	}
	return v, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseSum() (Number, error) {
	left, err := p.parseProduct()
	if err != nil {
		return Number{}, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return Number{}, err
		}
		if left, err = combine(op, left, right); err != nil {
			return Number{}, err
		}
	}
	return left, nil
}

func (p *parser) parseProduct() (Number, error) {
	left, err := p.parseUnary()
	if err != nil {
		return Number{}, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.kind
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return Number{}, err
		}
		if left, err = combine(op, left, right); err != nil {
			return Number{}, err
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (Number, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		neg := p.cur.kind == tokMinus
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return Number{}, err
		}
		if neg {
			v = v.neg()
		}
		return v, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Number, error) {
	switch p.cur.kind {
	case tokNumber:
		v, err := parseNumber(p.cur.text)
		if err != nil {
			return Number{}, err
		}
		p.next()
		return v, nil
	case tokLParen:
		p.next()
		v, err := p.parseSum()
		if err != nil {
			return Number{}, err
		}
		if p.cur.kind != tokRParen {
			return Number{}, fmt.Errorf("%w: expected ')'", ErrEvaluation)
		}
		p.next()
		return v, nil
	case tokEOF:
		return Number{}, fmt.Errorf("%w: incomplete expression", ErrEvaluation)
	default:
		return Number{}, fmt.Errorf("%w: unexpected %q", ErrEvaluation, p.cur.text)
	}
}

// parseNumber reads an all-digit literal as an exact integer and anything
// with a point or exponent as a float.
func parseNumber(text string) (Number, error) {
	if strings.IndexFunc(text, func(r rune) bool { return !isDigit(byte(r)) }) < 0 {
		return parseInt(text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: bad number %q", ErrEvaluation, text)
	}
	return Float(v), nil
}
