package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"ackersim/pkg/body"
	"ackersim/pkg/car"
	"ackersim/pkg/geom"
	"ackersim/pkg/scene"

	"golang.org/x/image/math/f64"
)

var (
	outlineColor = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	centerColor  = color.NRGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
)

// Renderer paints a map and a car in world coordinates onto an image with
// the y axis flipped.
type Renderer struct {
	opts RenderOptions
}

// NewRenderer creates a renderer with the default options overridden by opts.
func NewRenderer(opts ...Option) *Renderer {
	return &Renderer{opts: NewRenderOptions(opts...)}
}

// Options returns the current options.
func (r *Renderer) Options() RenderOptions {
	return r.opts
}

// Apply changes the options of later renders.
func (r *Renderer) Apply(opts ...Option) {
	r.opts.Apply(opts...)
}

// Size returns the image size Render produces.
func (r *Renderer) Size() (int, int) {
	return int(math.Round(scene.Width * r.opts.Scale)), int(math.Round(scene.Height * r.opts.Scale))
}

// Render paints the map statics, then every car part in paint order. A nil
// car renders the map alone.
func (r *Renderer) Render(m scene.Map, c *car.Car[float64]) *image.RGBA {
	width, height := r.Size()
	canvas := NewCanvas(width, height)
	canvas.SetBackground(r.opts.Background)
	canvas.Clear()

	for _, rect := range m.Statics() {
		r.drawRect(canvas, rect)
	}
	if c == nil {
		return canvas.Image()
	}

	for _, part := range car.Parts() {
		rect := c.Rect(part)
		r.drawRect(canvas, &rect)
		if r.opts.Outline {
			canvas.StrokePolygon(r.corners(&rect), edgeColor(&rect), 1)
		}
	}

	if r.opts.ShowTurningCenter {
		if center, ok := c.TurningCenter(c.SteerAngle()); ok {
			canvas.DrawLine(r.toPixel(c.BackOrigin()), r.toPixel(center), centerColor, 1)
			canvas.DrawCircle(r.toPixel(center), 4, centerColor)
		}
	}

	return canvas.Image()
}

// RenderToFile renders and saves the result as PNG.
func (r *Renderer) RenderToFile(m scene.Map, c *car.Car[float64], filename string) error {
	img := r.Render(m, c)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func (r *Renderer) drawRect(canvas *Canvas, rect *body.Rect[float64]) {
	switch src := rect.Source().(type) {
	case body.ColorSource:
		canvas.FillPolygon(r.corners(rect), src.Color)
	case body.ImageSource:
		if src.Image == nil || src.Image.Bounds().Empty() {
			return
		}
		canvas.DrawImageAffine(src.Image, r.imageTransform(rect, src.Image.Bounds()))
	}
}

func edgeColor(rect *body.Rect[float64]) color.NRGBA {
	if src, ok := rect.Source().(body.ColorSource); ok {
		return Shade(src.Color, 0.6)
	}
	return outlineColor
}

func (r *Renderer) corners(rect *body.Rect[float64]) []geom.Point[float64] {
	world := rect.Corners()
	pts := make([]geom.Point[float64], len(world))
	for i, p := range world {
		pts[i] = r.toPixel(p)
	}
	return pts
}

// toPixel converts world metres, y up, to pixels, y down.
func (r *Renderer) toPixel(p geom.Point[float64]) geom.Point[float64] {
	return transformPoint(p.X, p.Y, scene.Height, r.opts.Scale)
}

func transformPoint(x, y, mapHeight, scale float64) geom.Point[float64] {
	return geom.Pt(x*scale, (mapHeight-y)*scale)
}

// imageTransform maps source pixels onto the rectangle so that the image's
// top row lies along the rectangle's front edge.
func (r *Renderer) imageTransform(rect *body.Rect[float64], bounds image.Rectangle) f64.Aff3 {
	s := r.opts.Scale
	m := rect.Matrix()
	o := rect.Origin()
	w, h := rect.Width(), rect.Height()

	// local = (a*u + b, c*v + d)
	a := w / float64(bounds.Dx())
	b := -w / 2
	c := -h / float64(bounds.Dy())
	d := h / 2

	xx := s * m[0][0] * a
	xy := s * m[0][1] * c
	x0 := s * (o.X + m[0][0]*b + m[0][1]*d)
	yx := -s * m[1][0] * a
	yy := -s * m[1][1] * c
	y0 := s * (scene.Height - o.Y - m[1][0]*b - m[1][1]*d)

	minX, minY := float64(bounds.Min.X), float64(bounds.Min.Y)
	return f64.Aff3{
		xx, xy, x0 - xx*minX - xy*minY,
		yx, yy, y0 - yx*minX - yy*minY,
	}
}
