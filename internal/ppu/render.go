package ppu

import "goboy/pkg/bits"

// maxSpritesPerLine is the hardware cap on simultaneously visible sprites:
// when more than 10 overlap one line, only the first 10 in OAM order draw.
const maxSpritesPerLine = 10

// renderLine draws the current LY into the screen, background first then
// sprites.
func (p *PPU) renderLine() {
	p.renderBackground()
	p.renderSprites()
}

func (p *PPU) renderBackground() {
	if !bits.Test(p.lcdc, lcdcBGEnableBit) {
		return
	}

	mapStart := tileMap0Start
	if bits.Test(p.lcdc, lcdcBGMapSelBit) {
		mapStart = tileMap1Start
	}

	y := p.ly
	tileRow := uint16((y + p.scy) / 8 % 32)
	rowOffset := (y + p.scy) % 8

	for x := 0; x < ScreenWidth; x++ {
		col := p.scx + uint8(x)
		tileCol := uint16(col / 8 % 32)
		colOffset := col % 8

		mapAddr := mapStart - vramStart + tileRow*32 + tileCol
		tileIndex := p.vram[mapAddr]
		base := p.tileDataBase(tileIndex)

		idx := p.tilePixel(base, rowOffset, colOffset)
		p.bgIndex[x] = idx
		c := DefaultPalette[shade(p.bgp, idx)]
		p.screen.SetPixel(x, int(y), c)
	}
}

func (p *PPU) renderSprites() {
	if !bits.Test(p.lcdc, lcdcOBJEnableBit) {
		return
	}

	drawn := 0
	for i := 0; i < 40 && drawn < maxSpritesPerLine; i++ {
		s := p.spriteAt(i)
		if !s.inLine(p.ly) {
			continue
		}
		drawn++

		line := int(p.ly) - (int(s.y) - 16)
		row := uint8(line)
		if s.flipY() {
			row = 7 - row
		}

		base := p.tileDataUnsignedBase(s.tile)
		palette := p.obp0
		if s.paletteOne() {
			palette = p.obp1
		}

		startX := int(s.x) - 8
		for k := 0; k < 8; k++ {
			col := uint8(k)
			if s.flipX() {
				col = 7 - col
			}
			idx := p.tilePixel(base, row, col)
			if idx == 0 {
				continue
			}
			screenX := startX + k
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			if s.priority() && p.bgIndex[screenX] != 0 {
				continue
			}
			c := DefaultPalette[shade(palette, idx)]
			p.screen.SetPixel(screenX, int(p.ly), c)
		}
	}
}

// tileDataUnsignedBase resolves a sprite's tile index. Sprites always use
// the unsigned 0x8000 table regardless of LCDC bit 4.
func (p *PPU) tileDataUnsignedBase(index uint8) uint16 {
	return uint16(index) * 16
}
