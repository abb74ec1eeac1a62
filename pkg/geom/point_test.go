package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"ackersim/pkg/linalg"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1.0, 2.0)
	q := Pt(4.0, 6.0)

	d := q.Sub(p)
	require.Equal(t, linalg.NewVector(3.0, 4.0), d)
	require.Equal(t, q, p.Add(d))
	require.Equal(t, 5.0, Distance(p, q))
	require.Equal(t, Pt(2.5, 4.0), Midpoint(p, q))
}

func TestRotateAboutPivot(t *testing.T) {
	pivot := Pt(1.0, 1.0)
	p := Pt(2.0, 1.0)

	got := p.Rotate(NewRotation(math.Pi/2, pivot))
	require.True(t, got.ApproxEqual(Pt(1.0, 2.0), 1e-12), "got %v", got)

	got = p.Rotate(NewRotation(math.Pi, pivot))
	require.True(t, got.ApproxEqual(Pt(0.0, 1.0), 1e-12), "got %v", got)
}

func TestRotateRoundTrip(t *testing.T) {
	pivots := []Point[float64]{Pt(0.0, 0.0), Pt(3.5, -2.0), Pt(-10.0, 7.25)}
	points := []Point[float64]{Pt(1.0, 1.0), Pt(-4.0, 0.5), Pt(12.0, -9.0)}
	angles := []float64{-2.9, -0.5, 0.001, 1.3, 3.1}

	for _, o := range pivots {
		for _, p := range points {
			for _, a := range angles {
				r := NewRotation(a, o)
				inv, err := r.Inverse()
				require.NoError(t, err)
				back := p.Rotate(r).Rotate(inv)
				require.True(t, back.ApproxEqual(p, 1e-9), "p=%v o=%v a=%v got %v", p, o, a, back)
				require.InDelta(t, Distance(p, o), Distance(p.Rotate(r), o), 1e-9)
			}
		}
	}
}

func TestForward(t *testing.T) {
	p := Pt(2.0, 3.0)

	got := p.Forward(1.5, linalg.Identity[float64]())
	require.True(t, got.ApproxEqual(Pt(2.0, 4.5), 1e-12))

	got = p.Forward(-1.0, linalg.Identity[float64]())
	require.True(t, got.ApproxEqual(Pt(2.0, 2.0), 1e-12))

	// heading rotated a quarter turn left points along -x
	got = p.Forward(2, linalg.NewRotationMatrix(math.Pi/2))
	require.True(t, got.ApproxEqual(Pt(0.0, 3.0), 1e-12), "got %v", got)

	require.InDelta(t, 2.0, Distance(p, p.Forward(2, linalg.NewRotationMatrix(0.77))), 1e-12)
}

func TestRotationInverseDegenerate(t *testing.T) {
	r := Rotation[float64]{Origin: Pt(1.0, 1.0)}
	_, err := r.Inverse()
	require.ErrorIs(t, err, linalg.ErrDegenerateMatrix)
}
