package ppu

import (
	"image/color"

	"goboy/pkg/screen"
)

// Screen is the external collaborator the PPU draws into; see
// goboy/pkg/screen for the canonical contract definition.
type Screen = screen.Screen

// NullScreen discards everything drawn to it.
type NullScreen struct{}

func (NullScreen) SetPixel(x, y int, c color.RGBA) {}
func (NullScreen) Present()                        {}
