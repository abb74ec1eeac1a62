package sim

import (
	"bytes"
	"testing"

	"ackersim/internal/log"
	"ackersim/pkg/body"
	"ackersim/pkg/car"
	"ackersim/pkg/raster"
	"ackersim/pkg/scene"

	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, logger *log.Logger) *Session {
	t.Helper()
	s, err := NewSession(car.DefaultConfig(), body.RGB(0xff, 0, 0), "parallel", raster.NewRenderer(raster.Scale(10)), logger)
	require.NoError(t, err)
	return s
}

func TestNewSessionUnknownMap(t *testing.T) {
	_, err := NewSession(car.DefaultConfig(), body.RGB(0, 0, 0), "moon", raster.NewRenderer(), log.Nop())
	require.ErrorIs(t, err, scene.ErrUnknownMap)
}

func TestApplyUpdatesStatus(t *testing.T) {
	s := newSession(t, log.Nop())
	st := s.Status()
	require.Equal(t, "parallel", st.Map)
	require.Equal(t, 0, st.Steer)
	require.False(t, st.HasRadius)
	require.Contains(t, st.String(), "straight")

	require.NoError(t, s.Apply(car.Left()))
	require.NoError(t, s.Apply(car.Forward(1.5)))
	require.NoError(t, s.Apply(car.Back(0.5)))

	st = s.Status()
	require.Equal(t, 1, st.Steer)
	require.Equal(t, 4, st.MaxSteer)
	require.True(t, st.HasRadius)
	require.Greater(t, st.Radius, 0.0)
	require.InDelta(t, 2.0, st.Odometer, 1e-12)
	require.Contains(t, st.String(), "steer +1/4")
}

func TestResetRestoresStartPose(t *testing.T) {
	s := newSession(t, log.Nop())
	start := s.Car().Rect(car.Body).Origin()

	require.NoError(t, s.Apply(car.Right()))
	require.NoError(t, s.Apply(car.Forward(3)))
	require.NotEqual(t, start, s.Car().Rect(car.Body).Origin())

	require.NoError(t, s.Reset())
	require.Equal(t, start, s.Car().Rect(car.Body).Origin())
	require.Equal(t, 0, s.Status().Steer)
	require.Zero(t, s.Status().Odometer)
}

func TestSelectMapKeepsPreviousOnError(t *testing.T) {
	s := newSession(t, log.Nop())
	require.NoError(t, s.SelectMap("turn"))
	require.Equal(t, "turn", s.Status().Map)

	require.Error(t, s.SelectMap("moon"))
	require.Equal(t, "turn", s.Status().Map)
}

func TestApplyLogs(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(t, log.NewWriter(&buf, log.LevelDebug))

	require.NoError(t, s.Apply(car.Left()))
	require.Contains(t, buf.String(), `"map selected"`)
	require.Contains(t, buf.String(), `"command":"left"`)

	err := s.Apply(car.Command{Op: car.Op(99)})
	require.ErrorIs(t, err, car.ErrInvalidCommand)
	require.Contains(t, buf.String(), `"command failed"`)
}

func TestFrame(t *testing.T) {
	s := newSession(t, log.Nop())
	img := s.Frame()
	w, h := s.Renderer().Size()
	require.Equal(t, w, img.Bounds().Dx())
	require.Equal(t, h, img.Bounds().Dy())
}
