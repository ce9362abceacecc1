package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadCurveAt(t *testing.T) {
	c := NewQuadCurve(NewPoint(0, 0), NewPoint(50, 100), NewPoint(100, 0))

	assert.True(t, c.At(0).Equals(c.Start))
	assert.True(t, c.At(1).Equals(c.End))

	mid := c.At(0.5)
	assert.Equal(t, 50.0, mid.X)
	assert.Equal(t, 50.0, mid.Y)
}

func TestQuadCurveAngleAt(t *testing.T) {
	// symmetric arch: tangent at the apex is horizontal
	c := NewQuadCurve(NewPoint(0, 0), NewPoint(50, 100), NewPoint(100, 0))
	assert.Equal(t, 0, PrecisionCompare(c.AngleAt(0.5), 0, PRECISION))

	// degenerate straight line: tangent matches the chord angle
	line := NewQuadCurve(NewPoint(0, 0), NewPoint(50, 50), NewPoint(100, 100))
	assert.Equal(t, 0, PrecisionCompare(line.AngleAt(0.95), math.Pi/4, PRECISION))
}

func TestQuadCurveLength(t *testing.T) {
	line := NewQuadCurve(NewPoint(0, 0), NewPoint(50, 0), NewPoint(100, 0))
	assert.Equal(t, 0, PrecisionCompare(line.Length(32), 100, PRECISION))
}
