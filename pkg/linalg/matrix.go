// Package linalg implements the fixed-size vector and matrix algebra used by
// the rotation primitives. Everything is generic over the float width so a
// caller picks single or double precision once and never mixes them.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrDegenerateMatrix is returned when inverting a matrix whose determinant
// is numerically zero.
var ErrDegenerateMatrix = errors.New("degenerate matrix")

// Matrix2 represents a 2x2 matrix stored row-major:
//
//	[M[0][0] M[0][1]]
//	[M[1][0] M[1][1]]
type Matrix2[F constraints.Float] [2][2]F

// Identity returns the identity matrix.
func Identity[F constraints.Float]() Matrix2[F] {
	return Matrix2[F]{{1, 0}, {0, 1}}
}

// NewMatrix builds a matrix from its rows.
func NewMatrix[F constraints.Float](a, b, c, d F) Matrix2[F] {
	return Matrix2[F]{{a, b}, {c, d}}
}

// NewRotationMatrix returns the counter-clockwise rotation by angle radians.
func NewRotationMatrix[F constraints.Float](angle F) Matrix2[F] {
	sin, cos := math.Sincos(float64(angle))
	return Matrix2[F]{
		{F(cos), F(-sin)},
		{F(sin), F(cos)},
	}
}

// Mul returns m * other.
func (m Matrix2[F]) Mul(other Matrix2[F]) Matrix2[F] {
	return Matrix2[F]{
		{
			m[0][0]*other[0][0] + m[0][1]*other[1][0],
			m[0][0]*other[0][1] + m[0][1]*other[1][1],
		},
		{
			m[1][0]*other[0][0] + m[1][1]*other[1][0],
			m[1][0]*other[0][1] + m[1][1]*other[1][1],
		},
	}
}

// MulVec returns m * v.
func (m Matrix2[F]) MulVec(v Vector2D[F]) Vector2D[F] {
	return Vector2D[F]{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// Determinant returns the determinant of the matrix.
func (m Matrix2[F]) Determinant() F {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Transpose returns the transposed matrix. For a pure rotation this equals
// the inverse.
func (m Matrix2[F]) Transpose() Matrix2[F] {
	return Matrix2[F]{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// Inverse returns the closed-form inverse of the matrix.
func (m Matrix2[F]) Inverse() (Matrix2[F], error) {
	det := m.Determinant()
	if isNaN(det) || abs(det) < epsilon[F]() {
		return Matrix2[F]{}, fmt.Errorf("failed to invert %v (det=%v): %w", m, det, ErrDegenerateMatrix)
	}
	return Matrix2[F]{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}, nil
}

// Angle returns the rotation angle in radians, assuming m is a rotation.
func (m Matrix2[F]) Angle() F {
	return F(math.Atan2(float64(m[1][0]), float64(m[0][0])))
}

// ApproxEqual reports whether every entry differs by at most tol.
func (m Matrix2[F]) ApproxEqual(other Matrix2[F], tol F) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// epsilon is the determinant magnitude below which a matrix counts as
// singular. It adapts to the precision of F.
func epsilon[F constraints.Float]() F {
	eps := F(1e-12)
	if F(1)+eps == F(1) {
		// single precision
		eps = F(1e-6)
	}
	return eps
}

func abs[F constraints.Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

func isNaN[F constraints.Float](v F) bool {
	return v != v
}
