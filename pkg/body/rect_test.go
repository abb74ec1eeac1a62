package body

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"ackersim/pkg/geom"
	"ackersim/pkg/linalg"
)

func newRect(t *testing.T, x, y, w, h float64) *Rect[float64] {
	t.Helper()
	r, err := New(geom.Pt(x, y), w, h, RGB(0, 0, 0))
	require.NoError(t, err)
	return r
}

func TestNewValidatesDimensions(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 1},
		{"negative height", 1, -2},
		{"nan", math.NaN(), 1},
		{"inf", 1, math.Inf(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(geom.Pt(0.0, 0.0), tc.w, tc.h, RGB(1, 2, 3))
			require.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestCornersAxisAligned(t *testing.T) {
	r := newRect(t, 1, 2, 2, 4)

	require.Equal(t, geom.Pt(0.0, 4.0), r.LT())
	require.Equal(t, geom.Pt(2.0, 4.0), r.RT())
	require.Equal(t, geom.Pt(0.0, 0.0), r.LB())
	require.Equal(t, geom.Pt(2.0, 0.0), r.RB())
	require.Equal(t, [4]geom.Point[float64]{r.LT(), r.RT(), r.RB(), r.LB()}, r.Corners())
}

func TestRotateSelfKeepsOrigin(t *testing.T) {
	r := newRect(t, 1, 1, 2, 4)
	r.RotateSelf(linalg.NewRotationMatrix(math.Pi / 2))

	require.Equal(t, geom.Pt(1.0, 1.0), r.Origin())
	// the front edge now faces -x
	require.True(t, r.LT().ApproxEqual(geom.Pt(-1.0, 0.0), 1e-12), "got %v", r.LT())
	require.True(t, r.RB().ApproxEqual(geom.Pt(3.0, 2.0), 1e-12), "got %v", r.RB())
}

func TestRotateAboutExternalPivot(t *testing.T) {
	r := newRect(t, 2, 0, 1, 1)
	r.Rotate(geom.NewRotation(math.Pi/2, geom.Pt(0.0, 0.0)))

	require.True(t, r.Origin().ApproxEqual(geom.Pt(0.0, 2.0), 1e-12))
	require.True(t, r.Matrix().ApproxEqual(linalg.NewRotationMatrix(math.Pi/2), 1e-12))
	require.Equal(t, 1.0, r.Width())
	require.Equal(t, 1.0, r.Height())
}

func TestCornerDistancesInvariant(t *testing.T) {
	r := newRect(t, 3, -1, 1.5, 4.2)
	diag := geom.Distance(r.LT(), r.RB())

	r.Rotate(geom.NewRotation(0.3, geom.Pt(-5.0, 2.0)))
	r.Forward(2.5, r.Matrix())
	r.RotateSelf(linalg.NewRotationMatrix(-1.1))

	require.InDelta(t, diag, geom.Distance(r.LT(), r.RB()), 1e-12)
	require.InDelta(t, 1.5, geom.Distance(r.LT(), r.RT()), 1e-12)
	require.InDelta(t, 4.2, geom.Distance(r.LT(), r.LB()), 1e-12)
}

func TestForwardFollowsHeading(t *testing.T) {
	r := newRect(t, 0, 0, 1, 2)
	r.RotateSelf(linalg.NewRotationMatrix(-math.Pi / 2))
	before := r.Matrix()

	r.Forward(3, r.Matrix())
	require.True(t, r.Origin().ApproxEqual(geom.Pt(3.0, 0.0), 1e-12), "got %v", r.Origin())
	require.Equal(t, before, r.Matrix())

	r.Forward(-1, r.Matrix())
	require.True(t, r.Origin().ApproxEqual(geom.Pt(2.0, 0.0), 1e-12))
}

func TestSourceAspect(t *testing.T) {
	s := ImageSource{Image: image.NewRGBA(image.Rect(0, 0, 30, 15))}
	require.Equal(t, 0.5, s.Aspect())
	require.Equal(t, 1.0, ImageSource{}.Aspect())
}
