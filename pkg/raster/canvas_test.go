package raster

import (
	"image/color"
	"testing"

	"ackersim/pkg/geom"

	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func TestFillPolygon(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillPolygon([]geom.Point[float64]{
		geom.Pt(2.0, 2), geom.Pt(12.0, 2), geom.Pt(12.0, 12), geom.Pt(2.0, 12),
	}, red)

	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c.Image().RGBAAt(5, 5))
	require.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.Image().RGBAAt(15, 15))
}

func TestStrokePolygonLeavesInteriorEmpty(t *testing.T) {
	c := NewCanvas(20, 20)
	c.StrokePolygon([]geom.Point[float64]{
		geom.Pt(2.0, 2), geom.Pt(18.0, 2), geom.Pt(18.0, 18), geom.Pt(2.0, 18),
	}, red, 2)

	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c.Image().RGBAAt(10, 2))
	require.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.Image().RGBAAt(10, 10))
}

func TestClearAndPixels(t *testing.T) {
	c := NewCanvas(4, 3)
	require.Equal(t, 4, c.Width())
	require.Equal(t, 3, c.Height())

	c.SetBackground(color.Black)
	c.Clear()
	c.SetPixel(1, 1, red)
	c.SetPixel(10, 10, red)

	require.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(0, 0))
	r, _, _, _ := c.GetPixel(1, 1).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, color.Transparent, c.GetPixel(-1, 0))
}

func TestShade(t *testing.T) {
	require.Equal(t, color.NRGBA{R: 50, G: 100, B: 100, A: 7}, Shade(color.NRGBA{R: 100, G: 200, B: 200, A: 7}, 0.5))
	require.Equal(t, color.NRGBA{R: 200, G: 255, B: 255, A: 7}, Shade(color.NRGBA{R: 100, G: 200, B: 200, A: 7}, 2))
}
