package car

import "fmt"

// Part names one rectangle of the car.
type Part int

const (
	FrontLeft Part = iota
	FrontRight
	RearLeft
	RearRight
	Body
	Logo
	LeftMirror
	RightMirror

	// NumParts is the number of rectangles in a car.
	NumParts
)

var partNames = [NumParts]string{
	FrontLeft:   "front-left",
	FrontRight:  "front-right",
	RearLeft:    "rear-left",
	RearRight:   "rear-right",
	Body:        "body",
	Logo:        "logo",
	LeftMirror:  "left-mirror",
	RightMirror: "right-mirror",
}

func (p Part) String() string {
	if p < 0 || p >= NumParts {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return partNames[p]
}

// paintOrder draws the body first and the decal last.
var paintOrder = []Part{Body, LeftMirror, RightMirror, FrontLeft, FrontRight, RearLeft, RearRight, Logo}

// Parts returns every part in paint order.
func Parts() []Part {
	out := make([]Part, len(paintOrder))
	copy(out, paintOrder)
	return out
}
