// Package mmu implements the central bus dispatcher: a flat 64 KiB address
// space routed by content (each owner's Contains predicate), not by
// registration order, plus the boot-ROM overlay latch and echo-RAM
// aliasing. A single struct walks a list of memory.Region owners rather
// than wiring each register individually.
package mmu

import (
	"fmt"

	"goboy/internal/boot"
	"goboy/internal/cartridge"
	"goboy/internal/dma"
	"goboy/internal/interrupts"
	"goboy/internal/joypad"
	"goboy/internal/memory"
	"goboy/internal/ppu"
	"goboy/internal/ram"
	"goboy/internal/serial"
	"goboy/internal/timer"
	"goboy/pkg/log"
)

// bootLatch is the single write-only address that permanently disables the
// boot ROM overlay.
const bootLatch uint16 = 0xFF50

// Bus is the machine's memory-mapped I/O dispatcher.
type Bus struct {
	boot         *boot.ROM
	bootDisabled bool

	cart    *cartridge.Cartridge
	ppu     *ppu.PPU
	joypad  *joypad.State
	irq     *interrupts.Controller
	timer   *timer.Controller
	serial  *serial.Controller
	dma     *dma.Controller
	wram    *ram.RAM
	echo    *ram.Echo
	hram    *ram.RAM

	regions []memory.Region

	log log.Logger
}

// New builds a bus over the given cartridge and component set. boot may be
// nil, in which case the overlay starts disabled (as if the latch had
// already been written) - useful for tests that want to start straight at
// 0x0100.
func New(
	bootROM *boot.ROM,
	cart *cartridge.Cartridge,
	p *ppu.PPU,
	pad *joypad.State,
	irq *interrupts.Controller,
	tmr *timer.Controller,
	ser *serial.Controller,
	logger log.Logger,
) *Bus {
	if logger == nil {
		logger = log.NewNull()
	}

	wram := ram.New(0xC000, 0x2000)
	hram := ram.New(0xFF80, 0x7F)
	echo := ram.NewEcho(wram, 0xE000, 0x1E00)

	b := &Bus{
		boot:         bootROM,
		bootDisabled: bootROM == nil,
		cart:         cart,
		ppu:          p,
		joypad:       pad,
		irq:          irq,
		timer:        tmr,
		serial:       ser,
		wram:         wram,
		echo:         echo,
		hram:         hram,
		log:          logger,
	}
	b.dma = dma.New(b, p)
	b.regions = []memory.Region{cart, p, wram, echo, hram, pad, irq, tmr, ser, b.dma}
	b.log.Debugf("mmu: bus ready, boot overlay enabled: %v", !b.bootDisabled)
	return b
}

// Contains reports whether the bus can serve addr at all - true for every
// address, since the bus is the root dispatcher every access goes through;
// whether a specific address is actually claimed is resolved in Read/Write.
func (b *Bus) Contains(addr uint16) bool { return true }

// Read consults the boot latch first, then the first owner whose Contains
// claims addr. An address no region claims has no owner and no defined
// value, so Read panics with *ErrUnclaimedAddress rather than inventing one.
func (b *Bus) Read(addr uint16) uint8 {
	if !b.bootDisabled && addr < 0x100 {
		return b.boot.Read(addr)
	}
	for _, r := range b.regions {
		if r.Contains(addr) {
			return r.Read(addr)
		}
	}
	panic(&ErrUnclaimedAddress{Addr: addr})
}

// Write dispatches exactly like Read, with one special case: the boot
// latch at 0xFF50. Echo RAM is handled transparently by ram.Echo already
// being in the region list. An address no region claims panics, matching
// Read.
func (b *Bus) Write(addr uint16, value uint8) {
	if addr == bootLatch {
		if value == 0x01 {
			b.bootDisabled = true
		}
		return
	}
	for _, r := range b.regions {
		if r.Contains(addr) {
			r.Write(addr, value)
			return
		}
	}
	panic(&ErrUnclaimedAddress{Addr: addr, Write: true})
}

// Step advances every time-driven subsystem by cycles clock cycles: the
// PPU, the DMA transfer in flight, the timer, and finally the joypad's
// latched interrupt.
func (b *Bus) Step(cycles uint8) {
	b.ppu.Step(cycles)
	b.dma.Step(cycles)
	b.timer.Step(cycles)
	if b.joypad.TakeInterrupt() {
		b.irq.Request(interrupts.Joypad)
	}
}

// String aids debug logging; unexported fields are intentionally omitted.
func (b *Bus) String() string {
	return fmt.Sprintf("mmu.Bus{bootDisabled=%v}", b.bootDisabled)
}
