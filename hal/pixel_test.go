package hal

import "testing"

func TestRGB565RoundTripExtremes(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		if r != c[0] || g != c[1] || b != c[2] {
			t.Fatalf("round trip %v = %d,%d,%d", c, r, g, b)
		}
	}
}

func TestExpandRGB565(t *testing.T) {
	p := rgb565(255, 140, 0)
	src := []byte{byte(p), byte(p >> 8), 0, 0}
	dst := make([]byte, 8)
	expandRGB565(dst, src)

	r, g, b := rgb888From565(p)
	if dst[0] != r || dst[1] != g || dst[2] != b || dst[3] != 0xFF {
		t.Fatalf("pixel 0 = %v", dst[:4])
	}
	if dst[4] != 0 || dst[5] != 0 || dst[6] != 0 || dst[7] != 0xFF {
		t.Fatalf("pixel 1 = %v", dst[4:])
	}
}
