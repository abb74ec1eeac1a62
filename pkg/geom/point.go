// Package geom provides the 2D point type and rotation about an arbitrary
// origin, built on top of linalg.
package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"ackersim/pkg/linalg"
)

// Point is a position in map coordinates (metres, y up).
type Point[F constraints.Float] struct {
	X, Y F
}

// Pt is shorthand for Point{x, y}.
func Pt[F constraints.Float](x, y F) Point[F] {
	return Point[F]{X: x, Y: y}
}

// Vector returns the displacement from the map origin to p.
func (p Point[F]) Vector() linalg.Vector2D[F] {
	return linalg.NewVector(p.X, p.Y)
}

// Sub returns the displacement p - other.
func (p Point[F]) Sub(other Point[F]) linalg.Vector2D[F] {
	return p.Vector().Sub(other.Vector())
}

// Add returns p displaced by v.
func (p Point[F]) Add(v linalg.Vector2D[F]) Point[F] {
	return Point[F]{X: p.X + v.X(), Y: p.Y + v.Y()}
}

// Translate is an alias of Add.
func (p Point[F]) Translate(v linalg.Vector2D[F]) Point[F] {
	return p.Add(v)
}

// Rotate rotates p about rotation.Origin by rotation.Matrix.
func (p Point[F]) Rotate(rotation Rotation[F]) Point[F] {
	return rotation.Origin.Add(rotation.Matrix.MulVec(p.Sub(rotation.Origin)))
}

// Forward moves p by distance along the local +y axis of m. A negative
// distance moves backwards.
func (p Point[F]) Forward(distance F, m linalg.Matrix2[F]) Point[F] {
	target := Point[F]{X: p.X, Y: p.Y + distance}
	return target.Rotate(Rotation[F]{Matrix: m, Origin: p})
}

// ApproxEqual reports whether both coordinates differ by at most tol.
func (p Point[F]) ApproxEqual(other Point[F], tol F) bool {
	return math.Abs(float64(p.X-other.X)) <= float64(tol) &&
		math.Abs(float64(p.Y-other.Y)) <= float64(tol)
}

func (p Point[F]) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", float64(p.X), float64(p.Y))
}

// Distance returns the Euclidean distance between a and b.
func Distance[F constraints.Float](a, b Point[F]) F {
	return a.Sub(b).Len()
}

// Midpoint returns the point halfway between a and b.
func Midpoint[F constraints.Float](a, b Point[F]) Point[F] {
	return Point[F]{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
