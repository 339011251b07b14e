//go:build !tinygo

package hal

import "testing"

func TestHostFramebufferSnapshotOnPresent(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	dst := make([]byte, 4)

	if _, changed := fb.snapshotRGB565(dst, 0); changed {
		t.Fatal("snapshot before any Present should not change")
	}

	fb.ClearRGB(255, 255, 255)
	_ = fb.Present()
	seen, changed := fb.snapshotRGB565(dst, 0)
	if !changed || seen != 1 {
		t.Fatalf("snapshot after Present: seen=%d changed=%v", seen, changed)
	}
	if dst[0] != 0xFF || dst[1] != 0xFF {
		t.Fatalf("dst=%v, want white", dst)
	}

	if _, changed := fb.snapshotRGB565(dst, seen); changed {
		t.Fatal("second snapshot without Present should not change")
	}
}
