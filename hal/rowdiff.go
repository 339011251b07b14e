package hal

// rowDiff finds the band of framebuffer rows that changed since the last
// present, so a serial panel only receives what was redrawn. Rows are
// compared by FNV-1a sum.
type rowDiff struct {
	sums   []uint32
	primed bool
}

func newRowDiff(rows int) *rowDiff {
	return &rowDiff{sums: make([]uint32, rows)}
}

// band returns the first and last changed row, inclusive, and records the
// new sums. The first call, and the first after forget, reports every row.
func (d *rowDiff) band(buf []byte, stride int) (first, last int, ok bool) {
	if stride <= 0 {
		return 0, 0, false
	}
	rows := len(d.sums)
	if n := len(buf) / stride; n < rows {
		rows = n
	}

	first = -1
	for y := 0; y < rows; y++ {
		sum := fnv1a(buf[y*stride : (y+1)*stride])
		if d.primed && sum == d.sums[y] {
			continue
		}
		d.sums[y] = sum
		if first < 0 {
			first = y
		}
		last = y
	}
	d.primed = true
	if first < 0 {
		return 0, 0, false
	}
	return first, last, true
}

// forget makes the next band report every row, e.g. after a failed blit.
func (d *rowDiff) forget() { d.primed = false }

func fnv1a(b []byte) uint32 {
	h := uint32(2166136261)
	for _, c := range b {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}
