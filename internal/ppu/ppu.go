// Package ppu implements the pixel pipeline: a mode state machine driving
// a scanline renderer, owning video RAM and the sprite attribute table.
// Rendering runs synchronously per scanline on the same goroutine as the
// rest of the machine; there is no internal concurrency anywhere in this
// core.
package ppu

import (
	"fmt"

	"goboy/internal/interrupts"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	ModeHBlank uint8 = 0
	ModeVBlank uint8 = 1
	ModeOAM    uint8 = 2
	ModeVRAM   uint8 = 3

	oamCycles    = 80
	vramCycles   = 172
	hblankCycles = 204
	lineCycles   = 456
)

// PPU owns VRAM, OAM, the LCD control/status registers, and the mode state
// machine, and draws into an external Screen per step.
type PPU struct {
	vram [vramSize]byte
	oam  [oamSize]byte

	lcdc, stat             uint8
	scy, scx               uint8
	ly, lyc                uint8
	bgp, obp0, obp1        uint8
	wy, wx                 uint8

	mode       uint8
	modeCycles int

	// modeCycleTotals accumulates cycles spent in each mode across the
	// PPU's whole lifetime, indexed by mode (0=H-blank, 1=V-blank,
	// 2=OAM, 3=VRAM). Read by internal/diagnostics for an offline
	// histogram; never reset during normal operation.
	modeCycleTotals [4]int

	bgIndex [ScreenWidth]uint8

	irq    *interrupts.Controller
	screen Screen
}

// New returns a PPU in the mode-2 state a cold reset lands in, drawing
// into screen.
func New(irq *interrupts.Controller, screen Screen) *PPU {
	if screen == nil {
		screen = NullScreen{}
	}
	p := &PPU{irq: irq, screen: screen}
	p.setMode(ModeOAM)
	return p
}

// LY reports the current scanline, exported for diagnostics/tests.
func (p *PPU) LY() uint8 { return p.ly }

// Mode reports the current PPU mode (0-3).
func (p *PPU) Mode() uint8 { return p.mode }

// ModeCycleTotals reports the cumulative cycles spent in each mode
// (H-blank, V-blank, OAM, VRAM) since the PPU was created.
func (p *PPU) ModeCycleTotals() [4]int { return p.modeCycleTotals }

func (p *PPU) Contains(addr uint16) bool {
	if addr >= vramStart && addr < vramStart+vramSize {
		return true
	}
	if addr >= oamStart && addr < oamStart+oamSize {
		return true
	}
	switch addr {
	case LCDCAddr, STATAddr, SCYAddr, SCXAddr, LYAddr, LYCAddr,
		BGPAddr, OBP0Addr, OBP1Addr, WYAddr, WXAddr:
		return true
	}
	return false
}

func (p *PPU) Read(addr uint16) uint8 {
	if addr >= vramStart && addr < vramStart+vramSize {
		return p.vram[addr-vramStart]
	}
	if addr >= oamStart && addr < oamStart+oamSize {
		return p.oam[addr-oamStart]
	}
	switch addr {
	case LCDCAddr:
		return p.lcdc
	case STATAddr:
		return p.stat | 0x80
	case SCYAddr:
		return p.scy
	case SCXAddr:
		return p.scx
	case LYAddr:
		return p.ly
	case LYCAddr:
		return p.lyc
	case BGPAddr:
		return p.bgp
	case OBP0Addr:
		return p.obp0
	case OBP1Addr:
		return p.obp1
	case WYAddr:
		return p.wy
	case WXAddr:
		return p.wx
	}
	panic(fmt.Sprintf("ppu: illegal read from %#04x", addr))
}

func (p *PPU) Write(addr uint16, value uint8) {
	if addr >= vramStart && addr < vramStart+vramSize {
		p.vram[addr-vramStart] = value
		return
	}
	if addr >= oamStart && addr < oamStart+oamSize {
		p.oam[addr-oamStart] = value
		return
	}
	switch addr {
	case LCDCAddr:
		wasOn := p.enabled()
		p.lcdc = value
		if wasOn && !p.enabled() {
			p.ly = 0
			p.modeCycles = 0
			p.setMode(ModeHBlank)
		}
	case STATAddr:
		p.stat = (p.stat & (statCoincidence | statModeMask)) | (value &^ (statCoincidence | statModeMask))
	case SCYAddr:
		p.scy = value
	case SCXAddr:
		p.scx = value
	case LYAddr:
		// read-only on hardware; writes are discarded.
	case LYCAddr:
		p.lyc = value
		p.updateCoincidence()
	case BGPAddr:
		p.bgp = value
	case OBP0Addr:
		p.obp0 = value
	case OBP1Addr:
		p.obp1 = value
	case WYAddr:
		p.wy = value
	case WXAddr:
		p.wx = value
	default:
		panic(fmt.Sprintf("ppu: illegal write to %#04x", addr))
	}
}

// Step advances the mode state machine by cycles clock ticks (T-cycles),
// rendering a completed scanline on the OAM/VRAM -> H-blank transition and
// firing V-blank/STAT interrupts and the LYC coincidence check on every
// mode and line transition.
func (p *PPU) Step(cycles uint8) {
	if !p.enabled() {
		return
	}

	p.modeCycles += int(cycles)
	p.modeCycleTotals[p.mode] += int(cycles)

	switch p.mode {
	case ModeOAM:
		if p.modeCycles >= oamCycles {
			p.modeCycles -= oamCycles
			p.setMode(ModeVRAM)
		}
	case ModeVRAM:
		if p.modeCycles >= vramCycles {
			p.modeCycles -= vramCycles
			p.renderLine()
			p.enterHBlank()
		}
	case ModeHBlank:
		if p.modeCycles >= hblankCycles {
			p.modeCycles -= hblankCycles
			p.advanceLine()
		}
	case ModeVBlank:
		if p.modeCycles >= lineCycles {
			p.modeCycles -= lineCycles
			p.advanceVBlankLine()
		}
	}
}

func (p *PPU) enterHBlank() {
	p.setMode(ModeHBlank)
	if p.stat&statMode0Interrupt != 0 {
		p.irq.Request(interrupts.LCDStat)
	}
}

// advanceLine is the H-blank -> {OAM, V-blank} transition at a scanline
// boundary.
func (p *PPU) advanceLine() {
	p.ly++
	p.updateCoincidence()

	if p.ly == ScreenHeight {
		p.setMode(ModeVBlank)
		p.irq.Request(interrupts.VBlank)
		if p.stat&statMode1Interrupt != 0 {
			p.irq.Request(interrupts.LCDStat)
		}
		p.screen.Present()
		return
	}

	p.setMode(ModeOAM)
	if p.stat&statMode2Interrupt != 0 {
		p.irq.Request(interrupts.LCDStat)
	}
}

// advanceVBlankLine advances LY during the ten V-blank lines, wrapping
// LY from 153 back to 0 and re-entering OAM scan for line 0.
func (p *PPU) advanceVBlankLine() {
	p.ly++
	if p.ly > 153 {
		p.ly = 0
		p.updateCoincidence()
		p.setMode(ModeOAM)
		if p.stat&statMode2Interrupt != 0 {
			p.irq.Request(interrupts.LCDStat)
		}
		return
	}
	p.updateCoincidence()
}
