package hal

import "testing"

func TestParseScript(t *testing.T) {
	steps, err := ParseScript("7+3{enter}{wait:5}{ESC}÷{{")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	want := []ScriptStep{
		{Key: KeyEvent{Press: true, Rune: '7'}},
		{Key: KeyEvent{Press: true, Rune: '+'}},
		{Key: KeyEvent{Press: true, Rune: '3'}},
		{Key: KeyEvent{Press: true, Code: KeyEnter}},
		{Wait: 5},
		{Key: KeyEvent{Press: true, Code: KeyEscape}},
		{Key: KeyEvent{Press: true, Rune: '÷'}},
		{Key: KeyEvent{Press: true, Rune: '{'}},
	}
	if len(steps) != len(want) {
		t.Fatalf("len=%d, want %d: %+v", len(steps), len(want), steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d = %+v, want %+v", i, steps[i], want[i])
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, in := range []string{"{enter", "{nope}", "{wait:0}", "{wait:x}", "\xff"} {
		if _, err := ParseScript(in); err == nil {
			t.Fatalf("ParseScript(%q) succeeded, want error", in)
		}
	}
}
