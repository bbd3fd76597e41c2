package ppu

import "goboy/pkg/bits"

// vramSize is 0x8000-0x9FFF: 384 tiles of 16 bytes (0x8000-0x97FF) plus two
// 32x32 tile maps (0x9800-0x9FFF).
const (
	vramStart    uint16 = 0x8000
	vramSize            = 0x2000
	tileDataSize        = 0x1800 // 0x8000-0x97FF

	tileMap0Start uint16 = 0x9800
	tileMap1Start uint16 = 0x9C00
)

// tilePixel returns the 2-bit color index at (row, col) within the tile
// whose 16 bytes start at vram offset base: each row is a (plane 0,
// plane 1) byte pair, bit 7 is the leftmost pixel.
func (p *PPU) tilePixel(base uint16, row, col uint8) uint8 {
	plane0 := p.vram[base+uint16(row)*2]
	plane1 := p.vram[base+uint16(row)*2+1]
	bit := 7 - col
	b0 := bits.Val(plane0, bit)
	b1 := bits.Val(plane1, bit)
	return b1<<1 | b0
}

// tileDataBase resolves a tile map index to the VRAM offset of its 16-byte
// tile, honoring LCDC bit 4's signed/unsigned addressing quirk: under the
// signed table, index 0 maps into the middle of VRAM (0x9000).
func (p *PPU) tileDataBase(index uint8) uint16 {
	if bits.Test(p.lcdc, lcdcTileDataSelBit) {
		return uint16(index) * 16
	}
	return uint16(0x1000 + int16(int8(index))*16)
}
