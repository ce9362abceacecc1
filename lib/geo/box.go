package geo

import (
	"fmt"
	"math"
)

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

// Contains reports whether p is strictly inside b (boundary excluded).
func (b *Box) Contains(p *Point) bool {
	return p.X > b.TopLeft.X &&
		p.X < b.TopLeft.X+b.Width &&
		p.Y > b.TopLeft.Y &&
		p.Y < b.TopLeft.Y+b.Height
}

// BoundaryTowards returns the point where the ray from the box center
// toward target crosses the box boundary. Comparing |dx|*halfHeight
// against |dy|*halfWidth decides whether the ray exits through a
// vertical or a horizontal side; the direction vector is then scaled
// to land exactly on that side. A target coincident with the center
// degenerates to the center itself instead of dividing by zero.
func (b *Box) BoundaryTowards(target *Point) *Point {
	center := b.Center()
	dx := target.X - center.X
	dy := target.Y - center.Y

	if dx == 0 && dy == 0 {
		return center
	}

	halfW := b.Width / 2
	halfH := b.Height / 2

	if math.Abs(dx)*halfH >= math.Abs(dy)*halfW {
		// exits through the left or right side
		scale := halfW / math.Abs(dx)
		return NewPoint(center.X+dx*scale, center.Y+dy*scale)
	}
	// exits through the top or bottom side
	scale := halfH / math.Abs(dy)
	return NewPoint(center.X+dx*scale, center.Y+dy*scale)
}

func (b *Box) Intersections(s Segment) []*Point {
	pts := []*Point{}

	tl := b.TopLeft
	tr := NewPoint(tl.X+b.Width, tl.Y)
	br := NewPoint(tr.X, tr.Y+b.Height)
	bl := NewPoint(tl.X, br.Y)

	if p := IntersectionPoint(s.Start, s.End, tl, tr); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, tr, br); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, br, bl); p != nil {
		pts = append(pts, p)
	}
	if p := IntersectionPoint(s.Start, s.End, bl, tl); p != nil {
		pts = append(pts, p)
	}
	return pts
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
