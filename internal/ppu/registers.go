package ppu

import (
	"goboy/internal/interrupts"
	"goboy/pkg/bits"
)

// LCD control/status register addresses. 0xFF46 (DMA) is deliberately
// absent: the DMA trigger is serviced by internal/dma, which reaches into
// OAM from outside rather than being a PPU register.
const (
	LCDCAddr uint16 = 0xFF40
	STATAddr uint16 = 0xFF41
	SCYAddr  uint16 = 0xFF42
	SCXAddr  uint16 = 0xFF43
	LYAddr   uint16 = 0xFF44
	LYCAddr  uint16 = 0xFF45
	BGPAddr  uint16 = 0xFF47
	OBP0Addr uint16 = 0xFF48
	OBP1Addr uint16 = 0xFF49
	WYAddr   uint16 = 0xFF4A
	WXAddr   uint16 = 0xFF4B
)

// LCDC bit positions, as both the mask Read/Write callers compare whole
// register values against and the bit index bits.Test/Set/Reset take.
const (
	lcdcEnable       uint8 = 1 << 7
	lcdcWindowMap    uint8 = 1 << 6
	lcdcWindowEnable uint8 = 1 << 5
	lcdcTileDataSel  uint8 = 1 << 4
	lcdcBGMapSel     uint8 = 1 << 3
	lcdcOBJSize      uint8 = 1 << 2
	lcdcOBJEnable    uint8 = 1 << 1
	lcdcBGEnable     uint8 = 1 << 0

	lcdcEnableBit      uint8 = 7
	lcdcTileDataSelBit uint8 = 4
	lcdcBGMapSelBit    uint8 = 3
	lcdcOBJEnableBit   uint8 = 1
	lcdcBGEnableBit    uint8 = 0
)

// STAT bit positions.
const (
	statLYCInterrupt   uint8 = 1 << 6
	statMode2Interrupt uint8 = 1 << 5
	statMode1Interrupt uint8 = 1 << 4
	statMode0Interrupt uint8 = 1 << 3
	statCoincidence    uint8 = 1 << 2
	statModeMask       uint8 = 0x03

	statLYCInterruptBit uint8 = 6
	statCoincidenceBit  uint8 = 2
)

func (p *PPU) enabled() bool { return bits.Test(p.lcdc, lcdcEnableBit) }

func (p *PPU) setMode(mode uint8) {
	p.stat = (p.stat &^ statModeMask) | mode
	p.mode = mode
}

func (p *PPU) updateCoincidence() {
	if p.ly == p.lyc {
		p.stat = bits.Set(p.stat, statCoincidenceBit)
		if bits.Test(p.stat, statLYCInterruptBit) {
			p.irq.Request(interrupts.LCDStat)
		}
	} else {
		p.stat = bits.Reset(p.stat, statCoincidenceBit)
	}
}
