// Package cpu implements the LR35902 instruction interpreter: a register
// file, a switch-based primary/CB opcode dispatcher, and the delayed-IME,
// priority-ordered interrupt service sequence. Halt/stop mode handling is
// DMG-only: no double-speed, no APU/HDMA ticking.
package cpu

import (
	"goboy/internal/interrupts"
	"goboy/internal/registers"
)

// Bus is the memory and time interface the CPU drives. mmu.Bus satisfies
// this structurally; the interface exists so tests can swap in a minimal
// fake without importing the real bus.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	Step(cycles uint8)
}

// CPU is the instruction interpreter: a register file plus a bus and
// interrupt controller it drives one instruction at a time.
type CPU struct {
	Reg registers.File

	bus Bus
	irq *interrupts.Controller

	halted  bool
	haltBug bool
	stopped bool
}

// New returns a CPU with every register cleared. Callers that want the
// post-boot-ROM register state should set it explicitly after New.
func New(bus Bus, irq *interrupts.Controller) *CPU {
	return &CPU{bus: bus, irq: irq}
}

// Step executes exactly one instruction (or one cycle of halt/stop idling),
// services at most one pending interrupt if the master enable enters this
// step set, advances the bus by the elapsed cycles, and returns the number
// of clock cycles the step took.
//
// The delayed-IME state machine is resolved at the top of Step, before the
// current instruction runs: EI/DI schedule a change while retiring their own
// instruction, and that change only takes effect once the *following*
// instruction's Step begins. Resolving it here rather than after execute
// keeps EI from enabling interrupts within its own step.
func (c *CPU) Step() uint8 {
	c.irq.Tick()

	var cycles uint8

	switch {
	case c.halted:
		cycles = 4
		if c.hasPendingInterrupts() {
			c.halted = false
		}
	case c.stopped:
		cycles = 4
		if c.hasPendingInterrupts() {
			c.stopped = false
		}
	default:
		opcode := c.fetch8()
		cycles = c.execute(opcode)
	}

	if serviced := c.serviceInterrupt(); serviced > 0 {
		cycles += serviced
		c.halted = false
	}

	c.bus.Step(cycles)
	return cycles
}

func (c *CPU) hasPendingInterrupts() bool {
	return c.irq.Enable&c.irq.Pending&0x1F != 0
}

// serviceInterrupt performs the atomic interrupt-entry sequence: if IME is
// set and a source is pending and enabled, push PC and jump to the
// source's vector, costing 5 M-cycles (20 clock cycles).
func (c *CPU) serviceInterrupt() uint8 {
	if !c.irq.IME {
		return 0
	}
	source, ok := c.irq.Highest()
	if !ok {
		return 0
	}
	vector := c.irq.Service(source)
	c.pushWord(c.Reg.PC)
	c.Reg.PC = vector
	return 20
}

// fetch8 reads the byte at PC and advances PC, except immediately after a
// HALT executed with IME clear and an interrupt already pending: hardware
// fails to advance PC once in that case (the "halt bug"), so the next byte
// is read twice.
func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(c.Reg.PC)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.Reg.PC++
	}
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// fetchSigned8 reads a signed relative offset, used by JR and the SP+e
// instructions.
func (c *CPU) fetchSigned8() int8 {
	return int8(c.fetch8())
}
