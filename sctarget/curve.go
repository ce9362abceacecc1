package sctarget

import (
	"fmt"
	"math"

	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/lib/go2"
)

const (
	// bulge magnitude as a fraction of the chord length
	CURVE_FACTOR = 0.25

	// the arrowhead aligns with the curve's approach direction, not
	// the straight chord, so its angle is sampled near the endpoint
	ARROW_TANGENT_T = 0.95
)

// CurveBetween anchors a connector on the boundaries of two boxes and
// computes its quadratic control point. The control point sits
// perpendicular to the chord at CURVE_FACTOR of its length; which side
// it bulges toward comes from a stable hash of the rounded endpoint
// coordinates, so the identical pair of anchors curves the same way on
// every render, every layout run, and every process.
func CurveBetween(src, dst *geo.Box) *geo.QuadCurve {
	start := src.BoundaryTowards(dst.Center())
	end := dst.BoundaryTowards(src.Center())
	return Curve(start, end)
}

// Curve computes the connector curve for two known anchor points.
func Curve(start, end *geo.Point) *geo.QuadCurve {
	dist := start.DistanceTo(end)
	if dist == 0 {
		return geo.NewQuadCurve(start, start.Copy(), end)
	}

	mid := start.Interpolate(end, 0.5)
	perpX := -(end.Y - start.Y) / dist
	perpY := (end.X - start.X) / dist

	offset := dist * CURVE_FACTOR
	if curveParity(start, end) == 1 {
		offset = -offset
	}

	control := geo.NewPoint(mid.X+perpX*offset, mid.Y+perpY*offset)
	return geo.NewQuadCurve(start, control, end)
}

// curveParity decides the bulge side. Hash-based, never random: the
// reproducibility of rendered output is a product invariant.
func curveParity(start, end *geo.Point) int {
	key := fmt.Sprintf("%s->%s", start.FormattedCoordinates(), end.FormattedCoordinates())
	return go2.StringToIntHash(key) % 2
}

// ArrowAngle is the arrowhead orientation at the destination end.
func ArrowAngle(c *geo.QuadCurve) float64 {
	return c.AngleAt(ARROW_TANGENT_T)
}

// SourceArrowAngle orients the extra head of a bidirectional
// connector: the tangent near the source end, pointing outward.
func SourceArrowAngle(c *geo.QuadCurve) float64 {
	return c.AngleAt(1-ARROW_TANGENT_T) + math.Pi
}
