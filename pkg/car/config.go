package car

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrConfiguration is returned when the geometric constants cannot describe
// a drivable car.
var ErrConfiguration = errors.New("invalid car configuration")

// ConfigError names the offending field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// RGB is a YAML friendly opaque colour.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// NRGBA converts to an opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Config holds the fixed geometric constants of the car. Lengths are in
// metres, MirrorAngle is in degrees.
type Config struct {
	Width               float64 `json:"width" yaml:"width"`
	Height              float64 `json:"height" yaml:"height"`
	LogoWidth           float64 `json:"logo_width" yaml:"logo_width"`
	WheelWidth          float64 `json:"wheel_width" yaml:"wheel_width"`
	WheelHeight         float64 `json:"wheel_height" yaml:"wheel_height"`
	TurningRadius       float64 `json:"turning_radius" yaml:"turning_radius"`
	TurningCount        int     `json:"turning_count" yaml:"turning_count"`
	TrackWidth          float64 `json:"track_width" yaml:"track_width"`
	FrontSuspension     float64 `json:"front_suspension" yaml:"front_suspension"`
	RearSuspension      float64 `json:"rear_suspension" yaml:"rear_suspension"`
	MirrorWidth         float64 `json:"mirror_width" yaml:"mirror_width"`
	MirrorHeight        float64 `json:"mirror_height" yaml:"mirror_height"`
	MirrorAngle         float64 `json:"mirror_angle" yaml:"mirror_angle"`
	MirrorOriginToFront float64 `json:"mirror_origin_to_front" yaml:"mirror_origin_to_front"`
	BodyColor           RGB     `json:"body_color" yaml:"body_color"`
	WheelColor          RGB     `json:"wheel_color" yaml:"wheel_color"`
}

// DefaultConfig returns the Model 3 sized reference car.
func DefaultConfig() Config {
	const (
		wheelWidth  = 0.215
		mirrorWidth = 0.08
	)
	return Config{
		Width:     1.837,
		Height:    4.765,
		LogoWidth: 1.0,
		// tyre width and sidewalls plus a 17 inch rim
		WheelWidth:          wheelWidth,
		WheelHeight:         wheelWidth*0.55*2 + 17/39.37,
		TurningRadius:       5.5,
		TurningCount:        4,
		TrackWidth:          1.58,
		FrontSuspension:     0.92,
		RearSuspension:      1.05,
		MirrorWidth:         mirrorWidth,
		MirrorHeight:        0.35,
		MirrorAngle:         70,
		MirrorOriginToFront: 1.55 - mirrorWidth/2,
		BodyColor:           RGB{R: 24, G: 174, B: 219},
		WheelColor:          RGB{},
	}
}

// Option adjusts a Config.
type Option func(*Config)

// WithTurningRadius sets the rated minimum turning radius.
func WithTurningRadius(r float64) Option {
	return func(c *Config) {
		c.TurningRadius = r
	}
}

// WithTurningCount sets the number of steering steps to each side.
func WithTurningCount(n int) Option {
	return func(c *Config) {
		c.TurningCount = n
	}
}

// WithTrackWidth sets the distance between left and right wheels.
func WithTrackWidth(t float64) Option {
	return func(c *Config) {
		c.TrackWidth = t
	}
}

// WithColors sets the body and wheel colours.
func WithColors(bodyColor, wheelColor RGB) Option {
	return func(c *Config) {
		c.BodyColor = bodyColor
		c.WheelColor = wheelColor
	}
}

// NewConfig returns the defaults with opts applied.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	c.Apply(opts...)
	return c
}

// Apply applies functional options in order.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// LoadConfig decodes YAML on top of DefaultConfig, so a file only needs the
// fields it overrides. The result is validated.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode car config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Wheelbase returns the front to rear axle distance implied by the body
// length and suspension overhangs.
func (c Config) Wheelbase() float64 {
	return c.Height - c.FrontSuspension - c.RearSuspension
}

// MaxStepRadius returns the rear-axle turning radius at full lock.
func (c Config) MaxStepRadius() float64 {
	l := c.Wheelbase()
	return math.Sqrt(c.TurningRadius*c.TurningRadius-l*l) - c.TrackWidth/2
}

// Validate checks the constants once so the steering maths never sees a
// negative square root or a flipped radius.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"logo_width", c.LogoWidth},
		{"wheel_width", c.WheelWidth},
		{"wheel_height", c.WheelHeight},
		{"turning_radius", c.TurningRadius},
		{"track_width", c.TrackWidth},
		{"mirror_width", c.MirrorWidth},
		{"mirror_height", c.MirrorHeight},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return &ConfigError{Field: p.name, Reason: fmt.Sprintf("must be positive, got %v", p.value)}
		}
	}
	if c.TurningCount < 1 {
		return &ConfigError{Field: "turning_count", Reason: fmt.Sprintf("must be at least 1, got %d", c.TurningCount)}
	}
	if c.FrontSuspension < 0 || c.RearSuspension < 0 {
		return &ConfigError{Field: "suspension", Reason: "must not be negative"}
	}
	l := c.Wheelbase()
	if !(l > 0) {
		return &ConfigError{Field: "wheelbase", Reason: fmt.Sprintf("suspension overhangs leave %v", l)}
	}
	if c.TurningRadius*c.TurningRadius-l*l < 0 {
		return &ConfigError{
			Field:  "turning_radius",
			Reason: fmt.Sprintf("%v is shorter than wheelbase %v", c.TurningRadius, l),
		}
	}
	if !(c.MaxStepRadius() > 0) {
		return &ConfigError{
			Field:  "track_width",
			Reason: fmt.Sprintf("%v leaves no room inside turning radius %v", c.TrackWidth, c.TurningRadius),
		}
	}
	if !(c.MirrorAngle >= 0 && c.MirrorAngle <= 180) {
		return &ConfigError{Field: "mirror_angle", Reason: fmt.Sprintf("%v is outside [0, 180]", c.MirrorAngle)}
	}
	return nil
}
