// Package body implements the rigid rectangle: a fixed-size oriented
// rectangle that can only be moved and turned.
package body

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"ackersim/pkg/geom"
	"ackersim/pkg/linalg"
)

// ErrInvalidDimension is returned for a non-positive width or height.
var ErrInvalidDimension = errors.New("invalid rectangle dimension")

// Rect is an oriented rectangle. Width and height are the axis-aligned
// extents before any rotation and never change after construction.
type Rect[F constraints.Float] struct {
	origin geom.Point[F]
	width  F
	height F
	matrix linalg.Matrix2[F]
	source Source
}

// New creates an axis-aligned rectangle centred on origin.
func New[F constraints.Float](origin geom.Point[F], width, height F, source Source) (*Rect[F], error) {
	if !validExtent(width) || !validExtent(height) {
		return nil, fmt.Errorf("failed to create %vx%v rectangle: %w", width, height, ErrInvalidDimension)
	}
	return &Rect[F]{
		origin: origin,
		width:  width,
		height: height,
		matrix: linalg.Identity[F](),
		source: source,
	}, nil
}

func validExtent[F constraints.Float](v F) bool {
	f := float64(v)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Origin returns the centre in world space.
func (r Rect[F]) Origin() geom.Point[F] { return r.origin }

// Width returns the unrotated x extent.
func (r Rect[F]) Width() F { return r.width }

// Height returns the unrotated y extent.
func (r Rect[F]) Height() F { return r.height }

// Matrix returns the cumulative orientation.
func (r Rect[F]) Matrix() linalg.Matrix2[F] { return r.matrix }

// Source returns the drawable payload.
func (r Rect[F]) Source() Source { return r.source }

// LT returns the front-left corner.
func (r Rect[F]) LT() geom.Point[F] { return r.corner(-1, 1) }

// RT returns the front-right corner.
func (r Rect[F]) RT() geom.Point[F] { return r.corner(1, 1) }

// LB returns the back-left corner.
func (r Rect[F]) LB() geom.Point[F] { return r.corner(-1, -1) }

// RB returns the back-right corner.
func (r Rect[F]) RB() geom.Point[F] { return r.corner(1, -1) }

// Corners returns LT, RT, RB, LB, in polygon order.
func (r Rect[F]) Corners() [4]geom.Point[F] {
	return [4]geom.Point[F]{r.LT(), r.RT(), r.RB(), r.LB()}
}

func (r Rect[F]) corner(sx, sy F) geom.Point[F] {
	local := geom.Pt(r.origin.X+sx*r.width/2, r.origin.Y+sy*r.height/2)
	return local.Rotate(geom.Rotation[F]{Matrix: r.matrix, Origin: r.origin})
}

// RotateSelf left-composes m onto the orientation. The origin stays put.
func (r *Rect[F]) RotateSelf(m linalg.Matrix2[F]) {
	r.matrix = m.Mul(r.matrix)
}

// Rotate turns the whole rectangle about an external pivot.
func (r *Rect[F]) Rotate(rotation geom.Rotation[F]) {
	r.origin = r.origin.Rotate(rotation)
	r.RotateSelf(rotation.Matrix)
}

// Forward moves the origin distance along the heading of m. Orientation is
// unchanged.
func (r *Rect[F]) Forward(distance F, m linalg.Matrix2[F]) {
	r.origin = r.origin.Forward(distance, m)
}

// Translate moves the origin by v.
func (r *Rect[F]) Translate(v linalg.Vector2D[F]) {
	r.origin = r.origin.Add(v)
}

// SetOrientation replaces the orientation outright.
func (r *Rect[F]) SetOrientation(m linalg.Matrix2[F]) {
	r.matrix = m
}
