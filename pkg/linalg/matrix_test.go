package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotationMatrix(t *testing.T) {
	t.Run("quarter turn", func(t *testing.T) {
		m := NewRotationMatrix(math.Pi / 2)
		v := m.MulVec(NewVector(1.0, 0.0))
		require.InDelta(t, 0, v.X(), 1e-12)
		require.InDelta(t, 1, v.Y(), 1e-12)
	})

	t.Run("inverse equals negative angle", func(t *testing.T) {
		for _, angle := range []float64{-3, -1.2, -0.1, 0, 0.3, 1, math.Pi / 2, 2.5} {
			m := NewRotationMatrix(angle)
			inv, err := m.Inverse()
			require.NoError(t, err)
			require.True(t, inv.ApproxEqual(NewRotationMatrix(-angle), 1e-12), "angle %v", angle)
			require.True(t, m.Mul(inv).ApproxEqual(Identity[float64](), 1e-12), "angle %v", angle)
			require.True(t, inv.ApproxEqual(m.Transpose(), 1e-12))
		}
	})

	t.Run("composition sums angles", func(t *testing.T) {
		a := NewRotationMatrix(0.4)
		b := NewRotationMatrix(0.7)
		require.True(t, a.Mul(b).ApproxEqual(NewRotationMatrix(1.1), 1e-12))
		require.InDelta(t, 1, a.Mul(b).Determinant(), 1e-12)
		require.InDelta(t, 1.1, a.Mul(b).Angle(), 1e-12)
	})

	t.Run("single precision", func(t *testing.T) {
		m := NewRotationMatrix(float32(0.5))
		inv, err := m.Inverse()
		require.NoError(t, err)
		require.True(t, m.Mul(inv).ApproxEqual(Identity[float32](), 1e-6))
	})
}

func TestInverseDegenerate(t *testing.T) {
	_, err := NewMatrix(1.0, 2.0, 2.0, 4.0).Inverse()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDegenerateMatrix))

	_, err = Matrix2[float32]{}.Inverse()
	require.ErrorIs(t, err, ErrDegenerateMatrix)

	nan := math.NaN()
	_, err = NewMatrix(nan, 0, 0, 1).Inverse()
	require.ErrorIs(t, err, ErrDegenerateMatrix)
}

func TestInverseGeneral(t *testing.T) {
	m := NewMatrix(2.0, 1.0, 1.0, 3.0)
	inv, err := m.Inverse()
	require.NoError(t, err)
	require.True(t, m.Mul(inv).ApproxEqual(Identity[float64](), 1e-12))
}

func TestVector(t *testing.T) {
	a := NewVector(3.0, 4.0)
	b := NewVector(1.0, -2.0)
	require.Equal(t, 5.0, a.Len())
	require.Equal(t, a.Add(b), b.Add(a))
	require.Equal(t, NewVector(2.0, 6.0), a.Sub(b))
	require.Equal(t, NewVector(6.0, 8.0), a.Scale(2))
}
