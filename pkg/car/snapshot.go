package car

import (
	"golang.org/x/exp/constraints"

	"ackersim/pkg/geom"
)

// Snapshot is the renderable state of a car at one instant.
type Snapshot[F constraints.Float] struct {
	Steer     int                        `json:"steer"`
	Radius    F                          `json:"radius,omitempty"`
	Center    *geom.Point[F]             `json:"center,omitempty"`
	Corners   [NumParts][4]geom.Point[F] `json:"corners"`
	Origins   [NumParts]geom.Point[F]    `json:"origins"`
	Wheelbase F                          `json:"wheelbase"`
	Track     F                          `json:"track"`
}

// Snapshot captures every part's corners along with the steering geometry.
func (c *Car[F]) Snapshot() Snapshot[F] {
	s := Snapshot[F]{
		Steer:     c.steer,
		Wheelbase: c.Wheelbase(),
		Track:     c.TrackWidth(),
	}
	for i, r := range c.rects() {
		s.Corners[i] = r.Corners()
		s.Origins[i] = r.Origin()
	}
	if r, ok := c.TurningRadius(c.steer); ok {
		s.Radius = r
		center, _ := c.TurningCenter(c.steer)
		s.Center = &center
	}
	return s
}
