// Package scsketch turns exact geometry into slightly imperfect path
// data for the hand-drawn look. Every offset derives from a hash of
// the rounded input geometry, so the same diagram produces the same
// wobble bit for bit, across runs and across machines.
package scsketch

import (
	"fmt"
	"strings"

	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/lib/go2"
)

const (
	// DEFAULT_ROUGHNESS is the corner/edge displacement in pixels.
	DEFAULT_ROUGHNESS = 1.5

	// connector curves are subdivided into this many wobble segments
	CURVE_SEGMENTS = 8
)

// jitter maps (key, index) to a stable offset in [-magnitude, magnitude].
func jitter(key string, i int, magnitude float64) float64 {
	h := go2.StringToIntHash(fmt.Sprintf("%s#%d", key, i))
	unit := float64(h%2001)/1000 - 1
	return unit * magnitude
}

// RectPath produces hand-drawn path data tracing the box outline.
// Corners are nudged and each side bows through a displaced midpoint.
func RectPath(box *geo.Box, roughness float64) string {
	key := box.ToString()

	corners := []*geo.Point{
		box.TopLeft.Copy(),
		geo.NewPoint(box.TopLeft.X+box.Width, box.TopLeft.Y),
		geo.NewPoint(box.TopLeft.X+box.Width, box.TopLeft.Y+box.Height),
		geo.NewPoint(box.TopLeft.X, box.TopLeft.Y+box.Height),
	}
	for i, c := range corners {
		c.X += jitter(key, i*2, roughness)
		c.Y += jitter(key, i*2+1, roughness)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", corners[0].X, corners[0].Y)
	for i := range corners {
		from := corners[i]
		to := corners[(i+1)%len(corners)]
		mid := from.Interpolate(to, 0.5)
		mid.X += jitter(key, 100+i*2, roughness*1.2)
		mid.Y += jitter(key, 101+i*2, roughness*1.2)
		fmt.Fprintf(&b, " Q %.2f %.2f %.2f %.2f", mid.X, mid.Y, to.X, to.Y)
	}
	b.WriteString(" Z")
	return b.String()
}

// CurvePath produces hand-drawn path data tracing a connector curve.
// The curve is sampled and interior samples are displaced; endpoints
// stay exact so arrowheads and anchors keep lining up.
func CurvePath(c *geo.QuadCurve, roughness float64) string {
	key := c.Start.ToString() + c.Control.ToString() + c.End.ToString()

	samples := make([]*geo.Point, 0, CURVE_SEGMENTS+1)
	for i := 0; i <= CURVE_SEGMENTS; i++ {
		p := c.At(float64(i) / CURVE_SEGMENTS)
		if i > 0 && i < CURVE_SEGMENTS {
			p.X += jitter(key, i*2, roughness)
			p.Y += jitter(key, i*2+1, roughness)
		}
		samples = append(samples, p)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", samples[0].X, samples[0].Y)
	for i := 1; i < len(samples); i++ {
		prev := samples[i-1]
		next := samples[i]
		mid := prev.Interpolate(next, 0.5)
		fmt.Fprintf(&b, " Q %.2f %.2f %.2f %.2f", mid.X, mid.Y, next.X, next.Y)
	}
	return b.String()
}

// LinePath produces hand-drawn path data for a straight segment.
func LinePath(from, to *geo.Point, roughness float64) string {
	key := from.ToString() + to.ToString()
	mid := from.Interpolate(to, 0.5)
	mid.X += jitter(key, 0, roughness*1.2)
	mid.Y += jitter(key, 1, roughness*1.2)
	return fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f",
		from.X, from.Y, mid.X, mid.Y, to.X, to.Y)
}
