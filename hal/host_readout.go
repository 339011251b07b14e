//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

// hostReadout redraws the lines in place when out is a terminal and
// falls back to one "a | b" line per update otherwise.
type hostReadout struct {
	mu   sync.Mutex
	live *uilive.Writer
	out  io.Writer
	last string
}

func newHostReadout(out *os.File) *hostReadout {
	r := &hostReadout{out: out}
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		w := uilive.New()
		w.Out = out
		r.live = w
	}
	return r
}

func (r *hostReadout) SetLines(lines []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live == nil {
		line := strings.Join(lines, " | ")
		if line == r.last {
			return
		}
		r.last = line
		fmt.Fprintln(r.out, line)
		return
	}

	for _, line := range lines {
		fmt.Fprintln(r.live, line)
	}
	_ = r.live.Flush()
}
