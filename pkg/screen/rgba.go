package screen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGBAScreen is an in-memory Screen backed by an image.RGBA, standing in
// for a real window in tests and the headless runner.
type RGBAScreen struct {
	Image   *image.RGBA
	Presented int
}

// NewRGBAScreen returns a width x height RGBAScreen, all pixels zeroed.
func NewRGBAScreen(width, height int) *RGBAScreen {
	return &RGBAScreen{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *RGBAScreen) SetPixel(x, y int, c color.RGBA) {
	s.Image.SetRGBA(x, y, c)
}

// Present counts completed frames; a real collaborator would blit here.
func (s *RGBAScreen) Present() { s.Presented++ }

// Pix exposes the raw RGBA byte slice, letting a telemetry hub publish a
// completed frame without this package knowing anything about websockets.
func (s *RGBAScreen) Pix() []byte { return s.Image.Pix }

// Upscale returns a nearest-neighbor-scaled copy of the current frame at
// factor x its original size, for a more legible PNG snapshot.
func (s *RGBAScreen) Upscale(factor int) *image.RGBA {
	bounds := s.Image.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(out, out.Bounds(), s.Image, bounds, draw.Over, nil)
	return out
}
