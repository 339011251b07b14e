//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

type picoCalcKeyboard struct {
	bus *machine.I2C
	ch  chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

// newPicoCalcKeyboard finds the keyboard MCU and starts polling its FIFO.
func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	bus, err := findKeyboardBus()
	if err != nil {
		return nil, err
	}
	k := &picoCalcKeyboard{bus: bus, ch: make(chan KeyEvent, 64)}
	go k.poll()
	return k, nil
}

// findKeyboardBus tries I2C1 then I2C0 on GP6/GP7 at both speeds, giving
// the MCU half a second per setting since it boots slower than the Pico.
func findKeyboardBus() (*machine.I2C, error) {
	cmd := []byte{picoCalcKbdCmd}
	var report [2]byte
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			err := bus.Configure(machine.I2CConfig{SCL: machine.GP7, SDA: machine.GP6, Frequency: freq})
			if err != nil {
				continue
			}
			for try := 0; try < 50; try++ {
				if bus.Tx(picoCalcKbdAddr, cmd, report[:]) == nil {
					return bus, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}
	return nil, errors.New("keyboard: no I2C response")
}

func (k *picoCalcKeyboard) poll() {
	cmd := []byte{picoCalcKbdCmd}
	var report [2]byte
	for {
		if k.bus.Tx(picoCalcKbdAddr, cmd, report[:]) == nil {
			if ev, ok := decodePicoCalcReport(report); ok {
				select {
				case k.ch <- ev:
				default:
				}
			}
		}
		time.Sleep(2 * time.Millisecond)
	}
}
