// Package raster paints maps and cars onto RGBA images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"ackersim/pkg/geom"
	pathpkg "ackersim/pkg/path"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Canvas represents a drawing surface in pixel coordinates, y down.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	background color.Color
}

// NewCanvas creates a new canvas filled with white.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	return &Canvas{
		img:        img,
		width:      width,
		height:     height,
		background: color.White,
	}
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// SetBackground sets the background color used by Clear.
func (c *Canvas) SetBackground(col color.Color) {
	c.background = col
}

// Fill composites the interior of a path over the canvas.
func (c *Canvas) Fill(p *pathpkg.Path, col color.Color) {
	if p.IsEmpty() {
		return
	}

	r := vector.NewRasterizer(c.width, c.height)
	r.DrawOp = draw.Over
	pathpkg.ToVector(p, r)
	r.Draw(c.img, c.img.Bounds(), &image.Uniform{col}, image.Point{})
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts []geom.Point[float64], col color.Color) {
	c.Fill(pathpkg.NewBuilder().Polygon(pts...).Build(), col)
}

// Stroke draws every edge of a path as a band width pixels wide. Joins are
// left open.
func (c *Canvas) Stroke(p *pathpkg.Path, col color.Color, width float64) {
	if p.IsEmpty() || width <= 0 {
		return
	}

	halfWidth := width / 2
	b := pathpkg.NewBuilder()
	for _, line := range p.Lines() {
		start, end := line[0], line[1]
		dx := end.X - start.X
		dy := end.Y - start.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}

		nx := -dy / length * halfWidth
		ny := dx / length * halfWidth
		b.Polygon(
			geom.Pt(start.X+nx, start.Y+ny),
			geom.Pt(end.X+nx, end.Y+ny),
			geom.Pt(end.X-nx, end.Y-ny),
			geom.Pt(start.X-nx, start.Y-ny),
		)
	}
	c.Fill(b.Build(), col)
}

// StrokePolygon outlines the closed polygon through pts.
func (c *Canvas) StrokePolygon(pts []geom.Point[float64], col color.Color, width float64) {
	c.Stroke(pathpkg.NewBuilder().Polygon(pts...).Build(), col, width)
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(from, to geom.Point[float64], col color.Color, width float64) {
	p := pathpkg.NewBuilder().MoveTo(from.X, from.Y).LineTo(to.X, to.Y).Build()
	c.Stroke(p, col, width)
}

// DrawCircle fills a disc.
func (c *Canvas) DrawCircle(center geom.Point[float64], r float64, col color.Color) {
	c.Fill(pathpkg.NewBuilder().Circle(center.X, center.Y, r).Build(), col)
}

// DrawImageAffine composites src over the canvas through s2d, which maps
// source pixel coordinates to canvas pixel coordinates.
func (c *Canvas) DrawImageAffine(src image.Image, s2d f64.Aff3) {
	xdraw.BiLinear.Transform(c.img, s2d, src, src.Bounds(), xdraw.Over, nil)
}

// SetPixel sets a single pixel.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.img.Set(x, y, col)
	}
}

// GetPixel gets a pixel color.
func (c *Canvas) GetPixel(x, y int) color.Color {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		return c.img.At(x, y)
	}
	return color.Transparent
}
