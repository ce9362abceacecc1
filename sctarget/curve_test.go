package sctarget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrawl-labs/scrawl/lib/geo"
)

func TestCurveControlPointOffset(t *testing.T) {
	start := geo.NewPoint(0, 0)
	end := geo.NewPoint(100, 0)
	c := Curve(start, end)

	// the control point sits on the perpendicular through the chord
	// midpoint, a quarter chord away
	assert.InDelta(t, 50, c.Control.X, 0.001)
	assert.InDelta(t, 25, math.Abs(c.Control.Y), 0.001)
}

func TestCurveDegenerateEndpoints(t *testing.T) {
	p := geo.NewPoint(40, 40)
	c := Curve(p, geo.NewPoint(40, 40))
	assert.True(t, c.Control.Equals(p))
}

func TestCurveSideIsStable(t *testing.T) {
	start := geo.NewPoint(12.4, 99.6)
	end := geo.NewPoint(512.1, 340.9)

	first := Curve(start, end)
	for i := 0; i < 100; i++ {
		again := Curve(start.Copy(), end.Copy())
		require.True(t, first.Control.Equals(again.Control))
	}
}

func TestCurveSideSurvivesSubPixelJitter(t *testing.T) {
	// endpoints that round to the same integer coordinates must pick
	// the same bulge side
	a := Curve(geo.NewPoint(100.2, 200.4), geo.NewPoint(500.1, 300.4))
	b := Curve(geo.NewPoint(99.9, 199.8), geo.NewPoint(499.7, 299.6))

	sideA := a.Control.Y - a.Start.Interpolate(a.End, 0.5).Y
	sideB := b.Control.Y - b.Start.Interpolate(b.End, 0.5).Y
	assert.Equal(t, sideA > 0, sideB > 0)
}

func TestCurveBetweenAnchorsOnBoundaries(t *testing.T) {
	src := geo.NewBox(geo.NewPoint(0, 0), 100, 60)
	dst := geo.NewBox(geo.NewPoint(300, 0), 100, 60)

	c := CurveBetween(src, dst)

	// horizontally separated boxes anchor on their facing edges
	assert.InDelta(t, 100, c.Start.X, 0.001)
	assert.InDelta(t, 30, c.Start.Y, 0.001)
	assert.InDelta(t, 300, c.End.X, 0.001)
	assert.InDelta(t, 30, c.End.Y, 0.001)
}

func TestArrowAngleFollowsCurve(t *testing.T) {
	start := geo.NewPoint(0, 0)
	end := geo.NewPoint(100, 0)
	c := Curve(start, end)

	angle := ArrowAngle(c)
	// the approach direction tilts off the chord because of the bulge;
	// it still points broadly rightward
	assert.Less(t, math.Abs(angle), math.Pi/2)
	assert.Greater(t, math.Abs(angle), 1e-6)

	straight := geo.NewQuadCurve(start, geo.NewPoint(50, 0), end)
	assert.InDelta(t, 0, ArrowAngle(straight), 1e-9)
}

func TestSourceArrowAnglePointsBackward(t *testing.T) {
	c := geo.NewQuadCurve(geo.NewPoint(0, 0), geo.NewPoint(50, 0), geo.NewPoint(100, 0))
	assert.InDelta(t, math.Pi, SourceArrowAngle(c), 1e-9)
}
