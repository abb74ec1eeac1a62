package body

import (
	"image"
	"image/color"
)

// Source is what a renderer paints inside a rectangle. The kinematics never
// look inside it.
type Source interface {
	isSource()
}

// ColorSource fills the rectangle with a flat colour.
type ColorSource struct {
	Color color.NRGBA
}

// ImageSource stretches a pre-rendered pixel buffer over the rectangle. Row 0
// of the image maps to the rectangle's front (local +y) edge.
type ImageSource struct {
	Image *image.RGBA
}

func (ColorSource) isSource() {}
func (ImageSource) isSource() {}

// RGB returns a flat opaque colour source.
func RGB(r, g, b uint8) ColorSource {
	return ColorSource{Color: color.NRGBA{R: r, G: g, B: b, A: 0xff}}
}

// Aspect returns height/width of the pixel buffer, or 1 for an empty one.
func (s ImageSource) Aspect() float64 {
	if s.Image == nil {
		return 1
	}
	b := s.Image.Bounds()
	if b.Dx() == 0 {
		return 1
	}
	return float64(b.Dy()) / float64(b.Dx())
}
