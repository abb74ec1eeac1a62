// Package scene holds the maps a car is dropped into: static rectangles such
// as roads and parking bays, plus the car's starting pose.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"ackersim/pkg/body"
	"ackersim/pkg/car"
	"ackersim/pkg/geom"
)

// Scale is the number of pixels per metre used by renderers.
const Scale = 30.0

// Map dimensions in metres.
const (
	Width  = 800 / Scale
	Height = 800 / Scale
)

// ErrUnknownMap is returned by ByName for an unregistered map.
var ErrUnknownMap = errors.New("unknown map")

// Map is a static layout with a starting pose for the car.
type Map interface {
	// Name returns the registry key of the map.
	Name() string

	// Statics returns the non-moving rectangles, in paint order.
	Statics() []*body.Rect[float64]

	// StartPose returns where the body centre starts and its heading.
	StartPose() (geom.Point[float64], float64)
}

// NewCar builds a car at the map's starting pose.
func NewCar(m Map, cfg car.Config, logo body.Source) (*car.Car[float64], error) {
	origin, heading := m.StartPose()
	c, err := car.New(cfg, origin, heading, logo)
	if err != nil {
		return nil, fmt.Errorf("failed to place car on %s: %w", m.Name(), err)
	}
	return c, nil
}

var (
	roadColor    = body.RGB(0xff, 0xff, 0xff)
	parkingColor = body.RGB(0xf4, 0xe8, 0x9a)
)

var registry = map[string]func(car.Config) (Map, error){
	"parallel": func(cfg car.Config) (Map, error) { return NewParallelParking(cfg) },
	"turn":     func(cfg car.Config) (Map, error) { return NewRightAngleTurn(cfg) },
}

// Names lists the registered maps.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named map sized for cfg.
func ByName(name string, cfg car.Config) (Map, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownMap, name, Names())
	}
	return build(cfg)
}
