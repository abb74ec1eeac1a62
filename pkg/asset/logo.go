// Package asset turns the vector logo into the pixel buffer the car's decal
// is painted with. It runs once, before the car is built.
package asset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed res/logo.svg
var defaultLogo []byte

// ErrAssetLoad is matched by every error this package returns.
var ErrAssetLoad = errors.New("asset load failed")

// LoadError reports which asset failed and why.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrAssetLoad, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrAssetLoad, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrAssetLoad, e.Err}
}

// Rasterize renders an SVG document widthMeters wide at scale pixels per
// metre. The height follows the SVG view box aspect ratio.
func Rasterize(r io.Reader, widthMeters, scale float64) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("failed to parse svg: %w", err)}
	}

	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, &LoadError{Err: fmt.Errorf("svg has empty view box %vx%v", vb.W, vb.H)}
	}

	w := int(widthMeters * scale)
	h := int(widthMeters * vb.H / vb.W * scale)
	if w < 1 || h < 1 {
		return nil, &LoadError{Err: fmt.Errorf("logo %.3fm at %.1fpx/m is smaller than a pixel", widthMeters, scale)}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// LoadFile rasterizes the SVG at path.
func LoadFile(path string, widthMeters, scale float64) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := Rasterize(f, widthMeters, scale)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return img, nil
}

// Default rasterizes the built-in logo.
func Default(widthMeters, scale float64) (*image.RGBA, error) {
	return Rasterize(bytes.NewReader(defaultLogo), widthMeters, scale)
}
