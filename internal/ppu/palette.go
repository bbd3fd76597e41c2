package ppu

import "image/color"

// DefaultPalette maps a resolved 2-bit shade (0 lightest, 3 darkest) to an
// RGBA color: a plain grayscale ramp, since the Screen contract leaves the
// exact RGB values up to the caller.
var DefaultPalette = [4]color.RGBA{
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
	{R: 0x55, G: 0x55, B: 0x55, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
}

// shade runs a 2-bit color index through a palette register's four 2-bit
// entries to produce the final shade.
func shade(palette uint8, index uint8) uint8 {
	return (palette >> (index * 2)) & 0x03
}
