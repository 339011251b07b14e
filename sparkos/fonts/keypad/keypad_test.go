package keypad

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

type pixelSet map[[2]int16]bool

func (p pixelSet) Size() (x, y int16)                { return 100, 100 }
func (p pixelSet) SetPixel(x, y int16, c color.RGBA) { p[[2]int16{x, y}] = true }
func (p pixelSet) Display() error                    { return nil }

func TestFontDelegatesASCII(t *testing.T) {
	f := New(&freesans.Bold12pt7b)
	want := freesans.Bold12pt7b.GetGlyph('7').Info()
	if got := f.GetGlyph('7').Info(); got != want {
		t.Fatalf("GetGlyph('7')=%+v, want %+v", got, want)
	}
	if f.GetYAdvance() != freesans.Bold12pt7b.GetYAdvance() {
		t.Fatal("y advance should come from the base font")
	}
}

func TestGlyphMetrics(t *testing.T) {
	f := New(&freesans.Bold12pt7b)
	digit := freesans.Bold12pt7b.GetGlyph('0').Info()

	minus := f.GetGlyph(Minus).Info()
	if minus.XAdvance != digit.XAdvance || minus.Height != digit.Height {
		t.Fatalf("minus=%+v, digit=%+v", minus, digit)
	}
	back := f.GetGlyph(Backspace).Info()
	if back.XAdvance != digit.XAdvance*3/2 {
		t.Fatalf("backspace advance=%d, want %d", back.XAdvance, digit.XAdvance*3/2)
	}

	w, _ := tinyfont.LineWidth(f, "1"+string(Times)+"2")
	if w == 0 {
		t.Fatal("LineWidth should include the glyphs")
	}
}

func TestGlyphDrawsAboveBaseline(t *testing.T) {
	f := New(&freesans.Bold12pt7b)
	for _, r := range []rune{Minus, Times, Divide, Backspace} {
		p := pixelSet{}
		f.GetGlyph(r).Draw(p, 10, 50, color.RGBA{A: 0xFF})
		if len(p) == 0 {
			t.Fatalf("%c drew nothing", r)
		}
		info := f.GetGlyph(r).Info()
		for xy := range p {
			if xy[1] > 50 || xy[1] < 50-int16(info.Height)-1 {
				t.Fatalf("%c pixel %v outside the glyph box", r, xy)
			}
			if xy[0] < 10-1 || xy[0] > 10+int16(info.XAdvance) {
				t.Fatalf("%c pixel %v outside the advance", r, xy)
			}
		}
	}
}
