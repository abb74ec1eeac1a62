// Package car implements the Ackermann steering model of a car built from a
// fixed set of rigid rectangles.
//
// The car is driven by two kinds of discrete commands. Steering moves an
// integer step between -TurningCount and +TurningCount and re-aims the front
// wheels; driving moves the whole assembly either along an arc about the
// turning centre or, with the wheels straight, along the body heading. Every
// part receives the same rotation or translation, so the assembly never
// deforms.
package car

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"ackersim/pkg/body"
	"ackersim/pkg/geom"
	"ackersim/pkg/linalg"
)

// defaultLogoAspect sizes a decal whose source is not an image.
const defaultLogoAspect = 0.25

// Car is the rigid assembly of wheels, body, decal and mirrors plus the
// current steering step. It is not safe for concurrent use.
type Car[F constraints.Float] struct {
	cfg           Config
	turningRadius F
	turningCount  int

	frontLeft   *body.Rect[F]
	frontRight  *body.Rect[F]
	rearLeft    *body.Rect[F]
	rearRight   *body.Rect[F]
	chassis     *body.Rect[F]
	logo        *body.Rect[F]
	leftMirror  *body.Rect[F]
	rightMirror *body.Rect[F]

	steer int
}

// New builds a car whose body is centred on origin and rotated by heading
// radians (0 faces +y). logo is the decal payload; an ImageSource also fixes
// the decal's aspect ratio.
func New[F constraints.Float](cfg Config, origin geom.Point[F], heading F, logo body.Source) (*Car[F], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logo == nil {
		return nil, &ConfigError{Field: "logo", Reason: "source is missing"}
	}

	var err error
	part := func(o geom.Point[F], w, h float64, src body.Source) *body.Rect[F] {
		if err != nil {
			return nil
		}
		var r *body.Rect[F]
		r, err = body.New(o, F(w), F(h), src)
		return r
	}

	bodyColor := body.ColorSource{Color: cfg.BodyColor.NRGBA()}
	wheelColor := body.ColorSource{Color: cfg.WheelColor.NRGBA()}
	x, y := float64(origin.X), float64(origin.Y)
	halfTrack := cfg.TrackWidth / 2
	frontY := y + cfg.Height/2 - cfg.FrontSuspension
	rearY := y - cfg.Height/2 + cfg.RearSuspension

	c := &Car[F]{
		cfg:           cfg,
		turningRadius: F(cfg.TurningRadius),
		turningCount:  cfg.TurningCount,
	}
	c.chassis = part(origin, cfg.Width, cfg.Height, bodyColor)
	c.frontLeft = part(geom.Pt(F(x-halfTrack), F(frontY)), cfg.WheelWidth, cfg.WheelHeight, wheelColor)
	c.frontRight = part(geom.Pt(F(x+halfTrack), F(frontY)), cfg.WheelWidth, cfg.WheelHeight, wheelColor)
	c.rearLeft = part(geom.Pt(F(x-halfTrack), F(rearY)), cfg.WheelWidth, cfg.WheelHeight, wheelColor)
	c.rearRight = part(geom.Pt(F(x+halfTrack), F(rearY)), cfg.WheelWidth, cfg.WheelHeight, wheelColor)

	// The decal hangs 0.2m behind the front edge.
	logoHeight := cfg.LogoWidth * logoAspect(logo)
	c.logo = part(geom.Pt(origin.X, F(y+cfg.Height/2-0.2-logoHeight/2)), cfg.LogoWidth, logoHeight, logo)

	mirrorY := F(y + cfg.Height/2 - cfg.MirrorOriginToFront)
	c.leftMirror = part(geom.Pt(F(x-cfg.Width/2-cfg.MirrorHeight/2), mirrorY), cfg.MirrorWidth, cfg.MirrorHeight, bodyColor)
	c.rightMirror = part(geom.Pt(F(x+cfg.Width/2+cfg.MirrorHeight/2), mirrorY), cfg.MirrorWidth, cfg.MirrorHeight, bodyColor)
	if err != nil {
		return nil, fmt.Errorf("failed to build car: %w", err)
	}

	// Mirrors lie flat against the body, then swing out about their hinge.
	swing := F(math.Pi/2 - cfg.MirrorAngle*math.Pi/180)
	quarter := linalg.NewRotationMatrix(F(math.Pi / 2))
	c.leftMirror.RotateSelf(quarter)
	c.rightMirror.RotateSelf(quarter)
	c.leftMirror.Rotate(geom.NewRotation(swing, c.leftMirror.RB()))
	c.rightMirror.Rotate(geom.NewRotation(-swing, c.rightMirror.RT()))

	pose := geom.NewRotation(heading, origin)
	for _, r := range c.rects() {
		r.Rotate(pose)
	}
	return c, nil
}

func logoAspect(src body.Source) float64 {
	if img, ok := src.(body.ImageSource); ok && img.Image != nil {
		return img.Aspect()
	}
	return defaultLogoAspect
}

// rects lists every part in Part order.
func (c *Car[F]) rects() [NumParts]*body.Rect[F] {
	return [NumParts]*body.Rect[F]{
		FrontLeft:   c.frontLeft,
		FrontRight:  c.frontRight,
		RearLeft:    c.rearLeft,
		RearRight:   c.rearRight,
		Body:        c.chassis,
		Logo:        c.logo,
		LeftMirror:  c.leftMirror,
		RightMirror: c.rightMirror,
	}
}

// Rect returns a copy of the given part. It panics for a Part outside
// [0, NumParts).
func (c *Car[F]) Rect(p Part) body.Rect[F] {
	if p < 0 || p >= NumParts {
		panic(fmt.Sprintf("car: no such part %v", p))
	}
	return *c.rects()[p]
}

// Config returns the constants the car was built with.
func (c *Car[F]) Config() Config { return c.cfg }

// SteerAngle returns the current discrete steering step.
func (c *Car[F]) SteerAngle() int { return c.steer }

// TurningCount returns the number of steering steps to each side.
func (c *Car[F]) TurningCount() int { return c.turningCount }

// Heading returns the body orientation in radians, 0 facing +y.
func (c *Car[F]) Heading() F { return c.chassis.Matrix().Angle() }

// Wheelbase returns L, the distance between the left wheels.
func (c *Car[F]) Wheelbase() F {
	return geom.Distance(c.frontLeft.Origin(), c.rearLeft.Origin())
}

// TrackWidth returns T, the distance between the rear wheels.
func (c *Car[F]) TrackWidth() F {
	return geom.Distance(c.rearLeft.Origin(), c.rearRight.Origin())
}

// BackOrigin returns the midpoint of the rear axle.
func (c *Car[F]) BackOrigin() geom.Point[F] {
	return geom.Midpoint(c.rearLeft.Origin(), c.rearRight.Origin())
}

// TopOrigin returns the midpoint of the front axle.
func (c *Car[F]) TopOrigin() geom.Point[F] {
	return geom.Midpoint(c.frontLeft.Origin(), c.frontRight.Origin())
}

// TurningRadius maps a steering step to the signed rear-axle turning radius.
// Positive is a left turn. Step 0 has no radius.
//
// The radius is scaled so that full lock matches the rated turning radius
// measured at the outer front wheel.
func (c *Car[F]) TurningRadius(step int) (F, bool) {
	if step == 0 {
		return 0, false
	}
	l := c.Wheelbase()
	t := c.TrackWidth()
	full := F(math.Sqrt(float64(c.turningRadius*c.turningRadius-l*l))) - t/2
	return F(c.turningCount) * full / F(step), true
}

// TurningCenter returns the point the car pivots about at the given step,
// which lies on the rear axle line. Step 0 has no centre.
func (c *Car[F]) TurningCenter(step int) (geom.Point[F], bool) {
	r, ok := c.TurningRadius(step)
	if !ok {
		return geom.Point[F]{}, false
	}
	back := c.BackOrigin()
	local := geom.Pt(back.X-r, back.Y)
	return local.Rotate(geom.Rotation[F]{Matrix: c.chassis.Matrix(), Origin: back}), true
}

// angleMatrix is the rotation by atan2(L, r).
func (c *Car[F]) angleMatrix(r F) linalg.Matrix2[F] {
	l := c.Wheelbase()
	h := F(math.Hypot(float64(r), float64(l)))
	return linalg.NewMatrix(r/h, -l/h, l/h, r/h)
}

// wheelMatrices returns the steering matrices of the front-left and
// front-right wheels relative to the body for the given turning centre.
// The wheel nearer the centre takes the tighter angle.
func (c *Car[F]) wheelMatrices(center geom.Point[F], ok bool) (linalg.Matrix2[F], linalg.Matrix2[F], error) {
	if !ok {
		return linalg.Identity[F](), linalg.Identity[F](), nil
	}
	r := geom.Distance(c.BackOrigin(), center)
	half := c.TrackWidth() / 2
	big := c.angleMatrix(r - half)
	small := c.angleMatrix(r + half)

	if geom.Distance(c.frontLeft.Origin(), center) < geom.Distance(c.frontRight.Origin(), center) {
		return big, small, nil
	}
	// Turning right the angles are measured from the opposite direction.
	left, err := small.Inverse()
	if err != nil {
		return linalg.Matrix2[F]{}, linalg.Matrix2[F]{}, fmt.Errorf("failed to steer front-left wheel: %w", err)
	}
	right, err := big.Inverse()
	if err != nil {
		return linalg.Matrix2[F]{}, linalg.Matrix2[F]{}, fmt.Errorf("failed to steer front-right wheel: %w", err)
	}
	return left, right, nil
}

// steerTo re-aims the front wheels for step and commits the step only when
// both wheel matrices could be computed.
func (c *Car[F]) steerTo(step int) error {
	center, ok := c.TurningCenter(step)
	left, right, err := c.wheelMatrices(center, ok)
	if err != nil {
		return err
	}
	heading := c.chassis.Matrix()
	c.frontLeft.SetOrientation(left.Mul(heading))
	c.frontRight.SetOrientation(right.Mul(heading))
	c.steer = step
	return nil
}

// LeftSteer turns the wheels one step to the left. It saturates at
// TurningCount.
func (c *Car[F]) LeftSteer() error {
	if c.steer >= c.turningCount {
		return nil
	}
	return c.steerTo(c.steer + 1)
}

// RightSteer turns the wheels one step to the right. It saturates at
// -TurningCount.
func (c *Car[F]) RightSteer() error {
	if c.steer <= -c.turningCount {
		return nil
	}
	return c.steerTo(c.steer - 1)
}

// Forward drives distance metres; negative reverses. With the wheels turned
// every part rotates about the turning centre by the arc angle swept by the
// front axle midpoint, otherwise every part slides along the body heading.
func (c *Car[F]) Forward(distance F) {
	// Snapshot before any part moves.
	center, ok := c.TurningCenter(c.steer)
	parts := c.rects()
	if !ok {
		heading := c.chassis.Matrix()
		for _, r := range parts {
			r.Forward(distance, heading)
		}
		return
	}

	sign := F(-1)
	if c.steer > 0 {
		sign = 1
	}
	angle := distance / geom.Distance(c.TopOrigin(), center) * sign
	rotation := geom.NewRotation(angle, center)
	for _, r := range parts {
		r.Rotate(rotation)
	}
}
