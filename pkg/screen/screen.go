// Package screen defines the external collaborator contracts a host window
// implements (framebuffer blit, input event source) plus an in-memory test
// double standing in for a real window during tests and the headless
// runner.
package screen

import (
	"image/color"

	"goboy/internal/joypad"
)

// Screen is what the PPU draws into: one SetPixel call per visible pixel
// as each scanline completes, then Present once per frame at V-blank.
type Screen interface {
	SetPixel(x, y int, c color.RGBA)
	Present()
}

// Input is the key-event source a host window forwards into the machine.
// joypad.State satisfies this directly.
type Input interface {
	Press(key joypad.Key)
	Release(key joypad.Key)
}
