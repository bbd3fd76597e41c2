// Package timer implements the DIV/TIMA/TMA/TAC timer: falling-edge
// detection off an internal 16-bit divider, and the one-cycle TIMA-overflow
// delay before TMA reloads and the timer interrupt fires.
package timer

import (
	"fmt"

	"goboy/internal/interrupts"
	"goboy/pkg/bits"
)

const (
	DividerRegister uint16 = 0xFF04
	CounterRegister uint16 = 0xFF05
	ModuloRegister  uint16 = 0xFF06
	ControlRegister uint16 = 0xFF07
)

// Controller is the DIV/TIMA/TMA/TAC timer.
type Controller struct {
	divider uint16
	counter uint8
	modulo  uint8
	control uint8

	overflowing     bool
	releaseOverflow bool
	fallingEdge     bool

	irq *interrupts.Controller
}

// New returns a timer wired to post its interrupt through irq.
func New(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq}
}

func (c *Controller) Contains(addr uint16) bool {
	return addr >= DividerRegister && addr <= ControlRegister
}

func (c *Controller) Read(addr uint16) uint8 {
	switch addr {
	case DividerRegister:
		return uint8(c.divider >> 8)
	case CounterRegister:
		return c.counter
	case ModuloRegister:
		return c.modulo
	case ControlRegister:
		return c.control | 0xF8
	}
	panic(fmt.Sprintf("timer: illegal read from %#04x", addr))
}

func (c *Controller) Write(addr uint16, value uint8) {
	switch addr {
	case DividerRegister:
		c.divider = 0
	case CounterRegister:
		if !c.releaseOverflow {
			c.counter = value
			c.overflowing = false
		}
	case ModuloRegister:
		c.modulo = value
		if c.releaseOverflow {
			c.counter = value
		}
	case ControlRegister:
		c.control = value & 0x07
	default:
		panic(fmt.Sprintf("timer: illegal write to %#04x", addr))
	}
}

// multiplexerMask maps TAC's clock-select bits to the divider bit that
// feeds the falling-edge detector.
func (c *Controller) multiplexerMask() uint16 {
	switch c.control & 0x03 {
	case 0:
		return 1 << 9 // 4096 Hz
	case 1:
		return 1 << 3 // 262144 Hz
	case 2:
		return 1 << 5 // 65536 Hz
	default:
		return 1 << 7 // 16384 Hz
	}
}

// tacEnableBit is TAC's bit 2, the timer-enable flag.
const tacEnableBit uint8 = 2

func (c *Controller) enabled() bool { return bits.Test(c.control, tacEnableBit) }

// Step advances the timer by the given number of clock cycles (already
// ×4'd from machine cycles by the bus), detecting TIMA overflow one
// cycle after it occurs (the hardware's brief all-zero window) before
// reloading from TMA and posting the timer interrupt.
func (c *Controller) Step(cycles uint8) {
	for i := uint8(0); i < cycles; i++ {
		c.divider++

		if c.releaseOverflow {
			c.releaseOverflow = false
		}
		if c.overflowing {
			c.counter = c.modulo
			c.overflowing = false
			c.releaseOverflow = true
			c.irq.Request(interrupts.Timer)
		}

		signal := c.divider&c.multiplexerMask() != 0 && c.enabled()
		if !signal && c.fallingEdge {
			c.counter++
			if c.counter == 0 {
				c.overflowing = true
			}
		}
		c.fallingEdge = signal
	}
}
