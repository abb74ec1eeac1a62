package linalg

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vector2D is a displacement in the plane. It carries no position.
type Vector2D[F constraints.Float] [2]F

// NewVector returns the vector (x, y).
func NewVector[F constraints.Float](x, y F) Vector2D[F] {
	return Vector2D[F]{x, y}
}

// X returns the first component.
func (v Vector2D[F]) X() F { return v[0] }

// Y returns the second component.
func (v Vector2D[F]) Y() F { return v[1] }

// Add returns v + other.
func (v Vector2D[F]) Add(other Vector2D[F]) Vector2D[F] {
	return Vector2D[F]{v[0] + other[0], v[1] + other[1]}
}

// Sub returns v - other.
func (v Vector2D[F]) Sub(other Vector2D[F]) Vector2D[F] {
	return Vector2D[F]{v[0] - other[0], v[1] - other[1]}
}

// Scale multiplies both components by s.
func (v Vector2D[F]) Scale(s F) Vector2D[F] {
	return Vector2D[F]{v[0] * s, v[1] * s}
}

// Len returns the Euclidean length.
func (v Vector2D[F]) Len() F {
	return F(math.Hypot(float64(v[0]), float64(v[1])))
}
