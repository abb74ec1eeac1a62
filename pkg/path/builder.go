// Package path builds pixel-space outlines for the rasterizer.
package path

import (
	"math"

	"ackersim/pkg/geom"

	"golang.org/x/image/vector"
)

// Op is a path construction operation.
type Op int

const (
	OpMoveTo Op = iota
	OpLineTo
	OpCubeTo
	OpClose
)

// Segment is one operation and its points. CubeTo carries two control
// points followed by the end point.
type Segment struct {
	Op     Op
	Points []geom.Point[float64]
}

// Path is a sequence of subpaths.
type Path struct {
	Segments []Segment
}

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Map returns a copy of the path with every point passed through f.
func (p *Path) Map(f func(geom.Point[float64]) geom.Point[float64]) *Path {
	result := &Path{Segments: make([]Segment, len(p.Segments))}
	for i, seg := range p.Segments {
		pts := make([]geom.Point[float64], len(seg.Points))
		for j, pt := range seg.Points {
			pts[j] = f(pt)
		}
		result.Segments[i] = Segment{Op: seg.Op, Points: pts}
	}
	return result
}

// Lines flattens the path into straight edges. Curves contribute their end
// points only.
func (p *Path) Lines() [][2]geom.Point[float64] {
	var lines [][2]geom.Point[float64]
	var current, start geom.Point[float64]
	for _, seg := range p.Segments {
		switch seg.Op {
		case OpMoveTo:
			current = seg.Points[0]
			start = current
		case OpLineTo:
			lines = append(lines, [2]geom.Point[float64]{current, seg.Points[0]})
			current = seg.Points[0]
		case OpCubeTo:
			lines = append(lines, [2]geom.Point[float64]{current, seg.Points[2]})
			current = seg.Points[2]
		case OpClose:
			if current != start {
				lines = append(lines, [2]geom.Point[float64]{current, start})
			}
			current = start
		}
	}
	return lines
}

// ToVector feeds the path into a golang.org/x/image/vector rasterizer.
func ToVector(p *Path, rasterizer *vector.Rasterizer) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case OpMoveTo:
			rasterizer.MoveTo(float32(seg.Points[0].X), float32(seg.Points[0].Y))
		case OpLineTo:
			rasterizer.LineTo(float32(seg.Points[0].X), float32(seg.Points[0].Y))
		case OpCubeTo:
			rasterizer.CubeTo(
				float32(seg.Points[0].X), float32(seg.Points[0].Y),
				float32(seg.Points[1].X), float32(seg.Points[1].Y),
				float32(seg.Points[2].X), float32(seg.Points[2].Y),
			)
		case OpClose:
			rasterizer.ClosePath()
		}
	}
}

// Builder provides a fluent interface for building paths.
type Builder struct {
	path *Path
}

// NewBuilder creates a new path builder.
func NewBuilder() *Builder {
	return &Builder{path: &Path{}}
}

func (b *Builder) add(op Op, pts ...geom.Point[float64]) *Builder {
	b.path.Segments = append(b.path.Segments, Segment{Op: op, Points: pts})
	return b
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(x, y float64) *Builder {
	return b.add(OpMoveTo, geom.Pt(x, y))
}

// LineTo adds a straight edge.
func (b *Builder) LineTo(x, y float64) *Builder {
	return b.add(OpLineTo, geom.Pt(x, y))
}

// CurveTo adds a cubic Bezier curve.
func (b *Builder) CurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) *Builder {
	return b.add(OpCubeTo, geom.Pt(cp1x, cp1y), geom.Pt(cp2x, cp2y), geom.Pt(x, y))
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	return b.add(OpClose)
}

// Polygon adds a closed subpath through pts. Fewer than three points add
// nothing.
func (b *Builder) Polygon(pts ...geom.Point[float64]) *Builder {
	if len(pts) < 3 {
		return b
	}
	b.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		b.LineTo(pt.X, pt.Y)
	}
	return b.Close()
}

// Circle adds a circle to the path.
func (b *Builder) Circle(cx, cy, r float64) *Builder {
	k := 0.5522847498307936

	b.MoveTo(cx+r, cy)
	b.CurveTo(cx+r, cy+r*k, cx+r*k, cy+r, cx, cy+r)
	b.CurveTo(cx-r*k, cy+r, cx-r, cy+r*k, cx-r, cy)
	b.CurveTo(cx-r, cy-r*k, cx-r*k, cy-r, cx, cy-r)
	b.CurveTo(cx+r*k, cy-r, cx+r, cy-r*k, cx+r, cy)
	return b.Close()
}

// Arc adds an open arc from startAngle to endAngle, in radians.
func (b *Builder) Arc(cx, cy, r, startAngle, endAngle float64) *Builder {
	segments := int(math.Abs(endAngle-startAngle) / (math.Pi / 4))
	if segments < 1 {
		segments = 1
	}
	step := (endAngle - startAngle) / float64(segments)

	x := cx + r*math.Cos(startAngle)
	y := cy + r*math.Sin(startAngle)
	b.MoveTo(x, y)

	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < segments; i++ {
		a1 := startAngle + float64(i)*step
		a2 := a1 + step
		x2 := cx + r*math.Cos(a2)
		y2 := cy + r*math.Sin(a2)

		b.CurveTo(
			x-k*r*math.Sin(a1), y+k*r*math.Cos(a1),
			x2+k*r*math.Sin(a2), y2-k*r*math.Cos(a2),
			x2, y2,
		)
		x, y = x2, y2
	}
	return b
}

// Build returns the constructed path.
func (b *Builder) Build() *Path {
	return b.path
}

// Clear resets the builder for reuse.
func (b *Builder) Clear() *Builder {
	b.path = &Path{}
	return b
}
