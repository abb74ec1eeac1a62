package car

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.InDelta(t, 2.795, cfg.Wheelbase(), 1e-12)
	require.Greater(t, cfg.MaxStepRadius(), 0.0)
	require.Equal(t, color.NRGBA{R: 24, G: 174, B: 219, A: 0xff}, cfg.BodyColor.NRGBA())
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithTurningRadius(6),
		WithTurningCount(3),
		WithTrackWidth(1.6),
		WithColors(RGB{R: 1}, RGB{G: 2}),
	)
	require.Equal(t, 6.0, cfg.TurningRadius)
	require.Equal(t, 3, cfg.TurningCount)
	require.Equal(t, 1.6, cfg.TrackWidth)
	require.Equal(t, RGB{R: 1}, cfg.BodyColor)
	require.Equal(t, RGB{G: 2}, cfg.WheelColor)
	require.Equal(t, DefaultConfig().Height, cfg.Height)
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides on top of defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(`
turning_radius: 6.2
turning_count: 6
body_color: {r: 200, g: 10, b: 10}
`))
		require.NoError(t, err)
		require.Equal(t, 6.2, cfg.TurningRadius)
		require.Equal(t, 6, cfg.TurningCount)
		require.Equal(t, RGB{R: 200, G: 10, B: 10}, cfg.BodyColor)
		require.Equal(t, DefaultConfig().TrackWidth, cfg.TrackWidth)
	})

	t.Run("empty input yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("wingspan: 3\n"))
		require.Error(t, err)
	})

	t.Run("invalid geometry", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("turning_radius: 1.0\n"))
		require.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestValidateMirrorAngle(t *testing.T) {
	for _, angle := range []float64{math.NaN(), -1, 181, math.Inf(1)} {
		cfg := DefaultConfig()
		cfg.MirrorAngle = angle
		var cfgErr *ConfigError
		require.ErrorAs(t, cfg.Validate(), &cfgErr, "angle %v", angle)
		require.Equal(t, "mirror_angle", cfgErr.Field)
	}

	cfg := DefaultConfig()
	cfg.MirrorAngle = 0
	require.NoError(t, cfg.Validate())
}
