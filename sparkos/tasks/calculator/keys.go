package calculator

import (
	"unicode/utf8"

	"sparkcalc/sparkos/calc"
)

type keyKind uint8

const (
	keyRune keyKind = iota
	keyEnter
	keyBackspace
	keyTab
	keyEsc
	keyDelete
	keyF1
	keyIgnored
)

type key struct {
	kind keyKind
	r    rune
}

// nextKey decodes one key from VT100 input. ok is false when b holds an
// incomplete sequence that needs more bytes.
func nextKey(b []byte) (consumed int, k key, ok bool) {
	if len(b) == 0 {
		return 0, key{}, false
	}

	if b[0] == 0x1b {
		return parseEscapeKey(b)
	}

	switch b[0] {
	case '\r', '\n':
		return 1, key{kind: keyEnter}, true
	case 0x7f, 0x08:
		return 1, key{kind: keyBackspace}, true
	case '\t':
		return 1, key{kind: keyTab}, true
	}

	if b[0] < 0x20 {
		return 1, key{kind: keyIgnored}, true
	}
	if !utf8.FullRune(b) {
		return 0, key{}, false
	}
	r, sz := utf8.DecodeRune(b)
	if r == utf8.RuneError && sz == 1 {
		return 1, key{kind: keyIgnored}, true
	}
	return sz, key{kind: keyRune, r: r}, true
}

// parseEscapeKey handles ESC, ESC [ X and ESC [ N ~ / ESC [ N N ~.
func parseEscapeKey(b []byte) (consumed int, k key, ok bool) {
	if len(b) < 2 || b[1] != '[' {
		return 1, key{kind: keyEsc}, true
	}
	if len(b) < 3 {
		return 0, key{}, false
	}

	switch c := b[2]; {
	case c >= 'A' && c <= 'Z':
		// Arrows, Home, End: not calculator input.
		return 3, key{kind: keyIgnored}, true
	case c >= '0' && c <= '9':
		end := 3
		for end < len(b) && b[end] >= '0' && b[end] <= '9' {
			end++
		}
		if end >= len(b) {
			return 0, key{}, false
		}
		if b[end] != '~' {
			return 1, key{kind: keyEsc}, true
		}
		switch string(b[2:end]) {
		case "3":
			return end + 1, key{kind: keyDelete}, true
		case "11":
			return end + 1, key{kind: keyF1}, true
		default:
			return end + 1, key{kind: keyIgnored}, true
		}
	default:
		return 1, key{kind: keyEsc}, true
	}
}

// eventForKey maps a key to a calculator event: Enter or '=' evaluates,
// Esc clears everything, Delete clears the entry and Backspace deletes
// the last character.
func eventForKey(k key) (calc.Event, bool) {
	switch k.kind {
	case keyEnter:
		return calc.Equals(), true
	case keyEsc:
		return calc.ClearAll(), true
	case keyBackspace:
		return calc.Backspace(), true
	case keyDelete:
		return calc.ClearEntry(), true
	case keyRune:
		return calc.EventForRune(k.r)
	default:
		return calc.Event{}, false
	}
}
