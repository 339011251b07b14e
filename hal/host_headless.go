//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the runner after this many frames (0 runs until ctx is done).
	Ticks uint64
	// Keys is a ParseScript script fed one step per frame.
	Keys string
	// Readout mirrors the display lines on stdout.
	Readout bool
}

// RunHeadless runs the OS without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	script, err := ParseScript(cfg.Keys)
	if err != nil {
		return err
	}

	h := newHost(HostConfig{Readout: cfg.Readout})
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var (
		frame uint64
		wait  int
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}

		switch {
		case wait > 0:
			wait--
		case len(script) > 0:
			s := script[0]
			script = script[1:]
			if s.Wait > 0 {
				wait = s.Wait - 1
			} else {
				h.kbd.inject(s.Key)
			}
		}

		h.t.step(1)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		frame++
		if cfg.Ticks > 0 && frame >= cfg.Ticks {
			return nil
		}
	}
}
