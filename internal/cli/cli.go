// Package cli holds the argument handling and commands shared by the
// ackersim binaries.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ackersim/internal/log"
	"ackersim/pkg/asset"
	"ackersim/pkg/body"
	"ackersim/pkg/car"
	"ackersim/pkg/raster"
	"ackersim/pkg/scene"
)

// ErrUsage is returned for malformed command lines.
var ErrUsage = errors.New("usage error")

// Options is a parsed command line.
type Options struct {
	Map           string
	Output        string
	Script        string
	ConfigPath    string
	LogoPath      string
	Scale         float64
	DriveStep     float64
	TurningCenter bool
	Outline       bool
	LogLevel      string
}

// DefaultOptions returns the options used when no flag overrides them.
func DefaultOptions() Options {
	return Options{
		Map:       "parallel",
		Output:    "output.png",
		Scale:     scene.Scale,
		DriveStep: 0.1,
		LogLevel:  "info",
	}
}

// ParseArgs reads an optional map name followed by flags.
func ParseArgs(args []string) (Options, error) {
	o := DefaultOptions()

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		o.Map = args[0]
		args = args[1:]
	}

	for i := 0; i < len(args); i++ {
		flag := args[i]
		switch flag {
		case "-center":
			o.TurningCenter = true
			continue
		case "-outline":
			o.Outline = true
			continue
		}

		if i+1 >= len(args) {
			return Options{}, fmt.Errorf("%w: %s needs a value", ErrUsage, flag)
		}
		value := args[i+1]
		i++

		switch flag {
		case "-o":
			o.Output = value
		case "-c":
			o.Script = value
		case "-config":
			o.ConfigPath = value
		case "-logo":
			o.LogoPath = value
		case "-log":
			o.LogLevel = value
		case "-scale", "-step":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || !(v > 0) {
				return Options{}, fmt.Errorf("%w: %s wants a positive number, got %q", ErrUsage, flag, value)
			}
			if flag == "-scale" {
				o.Scale = v
			} else {
				o.DriveStep = v
			}
		default:
			return Options{}, fmt.Errorf("%w: unknown flag %s", ErrUsage, flag)
		}
	}
	return o, nil
}

// LoadConfig reads the car config at path, or returns the defaults when
// path is empty.
func LoadConfig(path string) (car.Config, error) {
	if path == "" {
		return car.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return car.Config{}, fmt.Errorf("failed to open car config: %w", err)
	}
	defer f.Close()

	cfg, err := car.LoadConfig(f)
	if err != nil {
		return car.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLogo rasterizes the SVG at path, or the built-in logo when path is
// empty, at scale pixels per metre.
func LoadLogo(path string, cfg car.Config, scale float64) (body.Source, error) {
	var err error
	src := body.ImageSource{}
	if path == "" {
		src.Image, err = asset.Default(cfg.LogoWidth, scale)
	} else {
		src.Image, err = asset.LoadFile(path, cfg.LogoWidth, scale)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// Renderer builds a renderer from the display flags.
func (o Options) Renderer() *raster.Renderer {
	opts := []raster.Option{raster.Scale(o.Scale)}
	if o.TurningCenter {
		opts = append(opts, raster.TurningCenter())
	}
	if o.Outline {
		opts = append(opts, raster.Outline())
	}
	return raster.NewRenderer(opts...)
}

// Setup loads the config and logo, builds the map and places the car on it.
func Setup(o Options, logger *log.Logger) (scene.Map, *car.Car[float64], error) {
	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	logo, err := LoadLogo(o.LogoPath, cfg, o.Scale)
	if err != nil {
		return nil, nil, err
	}
	m, err := scene.ByName(o.Map, cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := scene.NewCar(m, cfg, logo)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("car placed",
		log.String("map", m.Name()),
		log.Float("wheelbase", c.Wheelbase()),
		log.Float("track", c.TrackWidth()),
	)
	return m, c, nil
}

// Render drives the script and writes the final frame as PNG.
func Render(o Options, logger *log.Logger) error {
	cmds, err := car.ParseCommands(o.Script)
	if err != nil {
		return err
	}
	m, c, err := Setup(o, logger)
	if err != nil {
		return err
	}
	if err := c.Apply(cmds...); err != nil {
		return err
	}

	if dir := filepath.Dir(o.Output); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := o.Renderer().RenderToFile(m, c, o.Output); err != nil {
		return err
	}

	logger.Info("rendered",
		log.String("map", m.Name()),
		log.Int("commands", len(cmds)),
		log.String("output", o.Output),
	)
	return nil
}

// TraceRecord is one line of trace output.
type TraceRecord struct {
	Step    int                   `json:"step"`
	Command string                `json:"command,omitempty"`
	State   car.Snapshot[float64] `json:"state"`
}

// Trace writes the car state before the script and after every command as
// JSON lines.
func Trace(w io.Writer, o Options, logger *log.Logger) error {
	cmds, err := car.ParseCommands(o.Script)
	if err != nil {
		return err
	}
	_, c, err := Setup(o, logger)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(TraceRecord{State: c.Snapshot()}); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}
	for i, cmd := range cmds {
		if err := c.Apply(cmd); err != nil {
			return err
		}
		rec := TraceRecord{Step: i + 1, Command: cmd.String(), State: c.Snapshot()}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
	}
	return nil
}

// Maps lists the registered maps, one per line.
func Maps(w io.Writer) {
	for _, name := range scene.Names() {
		fmt.Fprintln(w, name)
	}
}
