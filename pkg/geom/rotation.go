package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"ackersim/pkg/linalg"
)

// Rotation is a rotation matrix paired with the pivot it turns about.
type Rotation[F constraints.Float] struct {
	Matrix linalg.Matrix2[F]
	Origin Point[F]
}

// NewRotation returns the rotation by angle radians about origin.
func NewRotation[F constraints.Float](angle F, origin Point[F]) Rotation[F] {
	return Rotation[F]{
		Matrix: linalg.NewRotationMatrix(angle),
		Origin: origin,
	}
}

// Inverse returns the rotation that undoes r about the same pivot.
func (r Rotation[F]) Inverse() (Rotation[F], error) {
	inv, err := r.Matrix.Inverse()
	if err != nil {
		return Rotation[F]{}, fmt.Errorf("failed to invert rotation about %v: %w", r.Origin, err)
	}
	return Rotation[F]{Matrix: inv, Origin: r.Origin}, nil
}

// Angle returns the rotation angle in radians.
func (r Rotation[F]) Angle() F {
	return r.Matrix.Angle()
}
