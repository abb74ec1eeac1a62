// Package sim drives one car around one map for the interactive front ends.
package sim

import (
	"fmt"
	"image"

	"ackersim/internal/log"
	"ackersim/pkg/body"
	"ackersim/pkg/car"
	"ackersim/pkg/raster"
	"ackersim/pkg/scene"
)

// Status is what the status bar shows after every command.
type Status struct {
	Map       string
	Steer     int
	MaxSteer  int
	Radius    float64
	HasRadius bool
	Odometer  float64
}

func (s Status) String() string {
	radius := "straight"
	if s.HasRadius {
		radius = fmt.Sprintf("radius %.2fm", s.Radius)
	}
	return fmt.Sprintf("%s | steer %+d/%d | %s | %.1fm driven", s.Map, s.Steer, s.MaxSteer, radius, s.Odometer)
}

// Session owns the map and car being shown. It is not safe for concurrent
// use.
type Session struct {
	cfg      car.Config
	logo     body.Source
	renderer *raster.Renderer
	logger   *log.Logger

	scene    scene.Map
	car      *car.Car[float64]
	odometer float64
}

// NewSession builds the named map and places a fresh car on it.
func NewSession(cfg car.Config, logo body.Source, mapName string, renderer *raster.Renderer, logger *log.Logger) (*Session, error) {
	s := &Session{
		cfg:      cfg,
		logo:     logo,
		renderer: renderer,
		logger:   logger,
	}
	if err := s.SelectMap(mapName); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectMap switches to another map and resets the car onto it. On failure
// the previous map stays.
func (s *Session) SelectMap(name string) error {
	m, err := scene.ByName(name, s.cfg)
	if err != nil {
		return fmt.Errorf("failed to build map: %w", err)
	}
	c, err := scene.NewCar(m, s.cfg, s.logo)
	if err != nil {
		return err
	}

	s.scene = m
	s.car = c
	s.odometer = 0
	s.logger.Info("map selected", log.String("map", name))
	return nil
}

// Reset puts a new car at the current map's start pose.
func (s *Session) Reset() error {
	return s.SelectMap(s.scene.Name())
}

// Apply runs one command against the car.
func (s *Session) Apply(cmd car.Command) error {
	if err := s.car.Apply(cmd); err != nil {
		s.logger.Warn("command failed", log.String("command", cmd.String()), log.Err(err))
		return err
	}
	if cmd.Op == car.OpForward || cmd.Op == car.OpBack {
		s.odometer += cmd.Distance
	}

	st := s.Status()
	s.logger.Debug("command applied",
		log.String("command", cmd.String()),
		log.Int("steer", st.Steer),
		log.Float("heading", s.car.Heading()),
	)
	return nil
}

// Status summarises the car's steering and travel.
func (s *Session) Status() Status {
	step := s.car.SteerAngle()
	radius, ok := s.car.TurningRadius(step)
	return Status{
		Map:       s.scene.Name(),
		Steer:     step,
		MaxSteer:  s.car.TurningCount(),
		Radius:    radius,
		HasRadius: ok,
		Odometer:  s.odometer,
	}
}

// Frame renders the current state.
func (s *Session) Frame() *image.RGBA {
	return s.renderer.Render(s.scene, s.car)
}

// Renderer returns the renderer frames are drawn with.
func (s *Session) Renderer() *raster.Renderer {
	return s.renderer
}

// Car returns the car being driven.
func (s *Session) Car() *car.Car[float64] {
	return s.car
}
