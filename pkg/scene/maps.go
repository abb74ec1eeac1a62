package scene

import (
	"fmt"

	"ackersim/pkg/body"
	"ackersim/pkg/car"
	"ackersim/pkg/geom"
)

const (
	parkingLength = 6.7
	parkingWidth  = 3.0
)

// ParallelParking is a vertical road with a parking bay on its right.
type ParallelParking struct {
	cfg          car.Config
	road         *body.Rect[float64]
	parkingSpace *body.Rect[float64]
}

// NewParallelParking lays out a road three car widths wide down the middle
// of the map.
func NewParallelParking(cfg car.Config) (*ParallelParking, error) {
	roadWidth := cfg.Width * 3
	road, err := body.New(geom.Pt(Width/2, Height/2), roadWidth, Height, roadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to create road: %w", err)
	}
	space, err := body.New(
		geom.Pt(road.Origin().X+roadWidth/2+parkingWidth/2, road.Origin().Y),
		parkingWidth, parkingLength, parkingColor)
	if err != nil {
		return nil, fmt.Errorf("failed to create parking space: %w", err)
	}
	return &ParallelParking{cfg: cfg, road: road, parkingSpace: space}, nil
}

func (p *ParallelParking) Name() string { return "parallel" }

func (p *ParallelParking) Statics() []*body.Rect[float64] {
	return []*body.Rect[float64]{p.road, p.parkingSpace}
}

// StartPose puts the car on the road's centre line, one car length up,
// facing along the road.
func (p *ParallelParking) StartPose() (geom.Point[float64], float64) {
	return geom.Pt(p.road.Origin().X, p.cfg.Height), 0
}

// ParkingSpace returns the bay the car is meant to end up in.
func (p *ParallelParking) ParkingSpace() *body.Rect[float64] { return p.parkingSpace }

// RightAngleTurn is a road running up the left third of the map that turns
// right into a road running to the map's right edge.
type RightAngleTurn struct {
	cfg        car.Config
	vertical   *body.Rect[float64]
	horizontal *body.Rect[float64]
}

// NewRightAngleTurn lays out both legs three car widths wide.
func NewRightAngleTurn(cfg car.Config) (*RightAngleTurn, error) {
	roadWidth := cfg.Width * 3
	x := Width / 3
	y := Height * 0.65

	top := y + roadWidth/2
	vertical, err := body.New(geom.Pt(x, top/2), roadWidth, top, roadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertical road: %w", err)
	}
	left := x - roadWidth/2
	horizontal, err := body.New(geom.Pt((left+Width)/2, y), Width-left, roadWidth, roadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to create horizontal road: %w", err)
	}
	return &RightAngleTurn{cfg: cfg, vertical: vertical, horizontal: horizontal}, nil
}

func (r *RightAngleTurn) Name() string { return "turn" }

func (r *RightAngleTurn) Statics() []*body.Rect[float64] {
	return []*body.Rect[float64]{r.vertical, r.horizontal}
}

// StartPose puts the car on the vertical leg facing the corner.
func (r *RightAngleTurn) StartPose() (geom.Point[float64], float64) {
	return geom.Pt(r.vertical.Origin().X, r.cfg.Height), 0
}

// Corner returns the centre of the junction.
func (r *RightAngleTurn) Corner() geom.Point[float64] {
	return geom.Pt(r.vertical.Origin().X, r.horizontal.Origin().Y)
}
