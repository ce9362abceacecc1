package geo

import "math"

// How precise should comparisons be, avoid being too precise due to floating point issues
const PRECISION = 0.0001

// QuadCurve is a quadratic bezier: start, a single control point, end.
// All connector arcs in scrawl are quadratic; the control point is
// what gives a connection its hand-drawn bulge.
type QuadCurve struct {
	Start   *Point
	Control *Point
	End     *Point
}

func NewQuadCurve(start, control, end *Point) *QuadCurve {
	return &QuadCurve{Start: start, Control: control, End: end}
}

// At returns the point at t along the curve, where 0 <= t <= 1.
func (c *QuadCurve) At(t float64) *Point {
	mt := 1 - t
	x := mt*mt*c.Start.X + 2*mt*t*c.Control.X + t*t*c.End.X
	y := mt*mt*c.Start.Y + 2*mt*t*c.Control.Y + t*t*c.End.Y
	return NewPoint(x, y)
}

// TangentAt returns the derivative direction at t as a unit-less
// vector point. The derivative of a quadratic bezier is linear in t.
func (c *QuadCurve) TangentAt(t float64) *Point {
	mt := 1 - t
	dx := 2*mt*(c.Control.X-c.Start.X) + 2*t*(c.End.X-c.Control.X)
	dy := 2*mt*(c.Control.Y-c.Start.Y) + 2*t*(c.End.Y-c.Control.Y)
	return NewPoint(dx, dy)
}

// AngleAt returns the tangent angle at t in radians.
func (c *QuadCurve) AngleAt(t float64) float64 {
	d := c.TangentAt(t)
	return math.Atan2(d.Y, d.X)
}

// Length approximates the arc length by sampling.
func (c *QuadCurve) Length(steps int) float64 {
	if steps < 1 {
		steps = 1
	}
	total := 0.0
	prev := c.Start
	for i := 1; i <= steps; i++ {
		next := c.At(float64(i) / float64(steps))
		total += prev.DistanceTo(next)
		prev = next
	}
	return total
}
