package raster

import (
	"image/color"

	"ackersim/pkg/scene"
)

// RenderOptions configures rendering behavior.
type RenderOptions struct {
	// Scale is pixels per metre.
	// Default: scene.Scale
	Scale float64

	// Background fills everything the map leaves uncovered.
	// Default: a light grey
	Background color.Color

	// ShowTurningCenter marks the point the car is circling and joins it to
	// the rear axle.
	// Default: false
	ShowTurningCenter bool

	// Outline draws the edges of every car part.
	// Default: false
	Outline bool
}

// DefaultRenderOptions returns render options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Scale:      scene.Scale,
		Background: color.NRGBA{R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff},
	}
}

// Option is a functional option for RenderOptions.
type Option func(*RenderOptions)

// Scale sets pixels per metre. Non-positive values are ignored.
func Scale(scale float64) Option {
	return func(o *RenderOptions) {
		if scale > 0 {
			o.Scale = scale
		}
	}
}

// Background sets the background color.
func Background(c color.Color) Option {
	return func(o *RenderOptions) {
		o.Background = c
	}
}

// TurningCenter enables the turning centre marker.
func TurningCenter() Option {
	return func(o *RenderOptions) {
		o.ShowTurningCenter = true
	}
}

// Outline enables part outlines.
func Outline() Option {
	return func(o *RenderOptions) {
		o.Outline = true
	}
}

// NewRenderOptions creates options from functional options.
func NewRenderOptions(opts ...Option) RenderOptions {
	o := DefaultRenderOptions()
	o.Apply(opts...)
	return o
}

// Apply applies functional options to existing options.
func (o *RenderOptions) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}
