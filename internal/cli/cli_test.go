package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"ackersim/internal/log"
	"ackersim/pkg/asset"
	"ackersim/pkg/car"
	"ackersim/pkg/scene"

	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	o, err := ParseArgs([]string{"turn", "-o", "out/x.png", "-c", "L F2", "-scale", "15", "-center", "-outline", "-log", "debug"})
	require.NoError(t, err)
	require.Equal(t, "turn", o.Map)
	require.Equal(t, "out/x.png", o.Output)
	require.Equal(t, "L F2", o.Script)
	require.Equal(t, 15.0, o.Scale)
	require.True(t, o.TurningCenter)
	require.True(t, o.Outline)
	require.Equal(t, "debug", o.LogLevel)

	o, err = ParseArgs(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultOptions(), o)
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"parallel", "-o"},
		{"-scale", "zero"},
		{"-scale", "-3"},
		{"-step", "0"},
		{"-bogus", "1"},
	} {
		_, err := ParseArgs(args)
		require.ErrorIs(t, err, ErrUsage, "%v", args)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, car.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "car.yaml")
	require.NoError(t, os.WriteFile(path, []byte("turning_count: 6\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.TurningCount)

	require.NoError(t, os.WriteFile(path, []byte("turning_count: 0\n"), 0o644))
	_, err = LoadConfig(path)
	require.ErrorIs(t, err, car.ErrConfiguration)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetupReportsBadInputs(t *testing.T) {
	o := DefaultOptions()
	o.Map = "moon"
	_, _, err := Setup(o, log.Nop())
	require.ErrorIs(t, err, scene.ErrUnknownMap)

	o = DefaultOptions()
	o.LogoPath = filepath.Join(t.TempDir(), "missing.svg")
	_, _, err = Setup(o, log.Nop())
	require.ErrorIs(t, err, asset.ErrAssetLoad)
}

func TestRender(t *testing.T) {
	o := DefaultOptions()
	o.Output = filepath.Join(t.TempDir(), "nested", "frame.png")
	o.Script = "L2 F3 R R B1"
	o.Scale = 10
	require.NoError(t, Render(o, log.Nop()))

	f, err := os.Open(o.Output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 267, img.Bounds().Dx())

	o.Script = "X"
	require.ErrorIs(t, Render(o, log.Nop()), car.ErrInvalidCommand)
}

func TestTrace(t *testing.T) {
	o := DefaultOptions()
	o.Script = "L F1"

	var buf bytes.Buffer
	require.NoError(t, Trace(&buf, o, log.Nop()))

	var records []TraceRecord
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var rec TraceRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, sc.Err())
	require.Len(t, records, 3)

	require.Equal(t, 0, records[0].Step)
	require.Nil(t, records[0].State.Center)
	require.Equal(t, "left", records[1].Command)
	require.Equal(t, 1, records[1].State.Steer)
	require.NotNil(t, records[1].State.Center)
	require.Equal(t, "forward 1", records[2].Command)
	require.NotEqual(t, records[1].State.Origins, records[2].State.Origins)
}

func TestMaps(t *testing.T) {
	var buf bytes.Buffer
	Maps(&buf)
	require.Equal(t, "parallel\nturn\n", buf.String())
}
