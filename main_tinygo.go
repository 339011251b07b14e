//go:build tinygo && baremetal && picocalc

package main

import (
	"sparkcalc/app"
	"sparkcalc/hal"
)

func main() {
	app.Run(hal.New())
}
