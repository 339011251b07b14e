package hal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ScriptStep is one headless input step: either a key or a pause.
type ScriptStep struct {
	Key KeyEvent
	// Wait is a pause in runner frames. When non-zero Key is ignored.
	Wait int
}

var scriptKeys = map[string]KeyCode{
	"enter": KeyEnter,
	"esc":   KeyEscape,
	"bs":    KeyBackspace,
	"del":   KeyDelete,
	"tab":   KeyTab,
	"f1":    KeyF1,
	"up":    KeyUp,
	"down":  KeyDown,
	"left":  KeyLeft,
	"right": KeyRight,
}

// ParseScript parses a headless key script. Plain characters are typed as
// text; named keys use braces: {enter} {esc} {bs} {del} {tab} {f1}; {wait:N}
// pauses for N frames. "{{" types a literal brace.
func ParseScript(s string) ([]ScriptStep, error) {
	var steps []ScriptStep
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "{{") {
			steps = append(steps, ScriptStep{Key: KeyEvent{Press: true, Rune: '{'}})
			i += 2
			continue
		}
		if s[i] != '{' {
			r, n := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && n <= 1 {
				return nil, fmt.Errorf("script: invalid utf-8 at offset %d", i)
			}
			steps = append(steps, ScriptStep{Key: KeyEvent{Press: true, Rune: r}})
			i += n
			continue
		}

		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			return nil, fmt.Errorf("script: unterminated %q at offset %d", s[i:], i)
		}
		name := strings.ToLower(s[i+1 : i+end])
		i += end + 1

		if rest, ok := strings.CutPrefix(name, "wait:"); ok {
			n, err := strconv.Atoi(rest)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("script: bad wait %q", rest)
			}
			steps = append(steps, ScriptStep{Wait: n})
			continue
		}
		code, ok := scriptKeys[name]
		if !ok {
			return nil, fmt.Errorf("script: unknown key {%s}", name)
		}
		steps = append(steps, ScriptStep{Key: KeyEvent{Code: code, Press: true}})
	}
	return steps, nil
}
