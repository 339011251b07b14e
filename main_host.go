//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/hal"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Keys, "keys", cfg.Keys, "Headless key script, e.g. \"7+3{enter}{wait:150}\".")
	flag.BoolVar(&cfg.Readout, "readout", cfg.Readout, "Mirror the display lines on stdout.")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window scale factor.")
	flag.Parse()

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, app.New, cfg.HeadlessConfig()); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(app.New, cfg.WindowConfig()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
