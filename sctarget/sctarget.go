// Package sctarget is the boundary between layout and rendering: a
// Diagram is everything a rendering surface needs, fully positioned,
// with anchor points and curve control points already computed. It is
// plain serializable data with no live references, so history
// snapshots and structural comparison both work on it.
package sctarget

import (
	"context"

	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/scgraph"
	"github.com/scrawl-labs/scrawl/sclayouts"
	"github.com/scrawl-labs/scrawl/sclayouts/scradial"
)

const ZONE_PADDING = 30

type Shape struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	ShapeType   string `json:"shapeType,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`

	Box *geo.Box `json:"box"`

	// Hub marks the anchor node of a radial layout; renderers give it
	// extra visual weight.
	Hub bool `json:"hub,omitempty"`
}

type Connection struct {
	Src   string        `json:"src"`
	Dst   string        `json:"dst"`
	Label string        `json:"label,omitempty"`
	Style scgraph.Style `json:"style,omitempty"`

	Start   *geo.Point `json:"start"`
	Control *geo.Point `json:"control"`
	End     *geo.Point `json:"end"`

	// arrowhead angles in radians, already aligned with the curve
	DstArrowAngle float64 `json:"dstArrowAngle"`
	SrcArrowAngle float64 `json:"srcArrowAngle,omitempty"`
}

func (c *Connection) Curve() *geo.QuadCurve {
	return geo.NewQuadCurve(c.Start, c.Control, c.End)
}

func (c *Connection) Dashed() bool {
	return c.Style == scgraph.StyleDashed || c.Style == scgraph.StyleCurvedDashed
}

func (c *Connection) Bidirectional() bool {
	return c.Style == scgraph.StyleBidirectional
}

// ZoneBox is the presentational bounding box of a zone, recomputed
// from its members' positions on every layout run.
type ZoneBox struct {
	Name  string   `json:"name"`
	Color string   `json:"color,omitempty"`
	Box   *geo.Box `json:"box"`
}

type Diagram struct {
	Title  string  `json:"title,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Mode sclayouts.Mode `json:"mode"`

	Zones       []ZoneBox    `json:"zones,omitempty"`
	Shapes      []Shape      `json:"shapes"`
	Connections []Connection `json:"connections"`
}

// Compute lays out the graph and assembles the full diagram: one shape
// per node in declaration order, one routed connection per non-dangling
// edge, and zone boxes wrapped around member positions. Pure and
// idempotent; calling it twice yields identical diagrams.
func Compute(ctx context.Context, g *scgraph.Graph, w, h float64, mode sclayouts.Mode) *Diagram {
	positions := sclayouts.Layout(ctx, g, w, h, mode)

	d := &Diagram{
		Title:  g.Title,
		Width:  w,
		Height: h,
		Mode:   mode,
	}

	var hubID string
	if mode == sclayouts.ModeRadial && len(g.Nodes) > 1 {
		hubID = scradial.Hub(g).ID
	}

	for _, n := range g.Nodes {
		d.Shapes = append(d.Shapes, Shape{
			ID:          n.ID,
			Label:       n.Label,
			Description: n.Description,
			ShapeType:   n.Shape,
			Color:       n.Color,
			Icon:        n.Icon,
			Box:         positions[n.ID],
			Hub:         n.ID == hubID,
		})
	}

	for _, c := range g.Connections {
		srcBox, ok := positions[c.From]
		if !ok {
			continue
		}
		dstBox, ok := positions[c.To]
		if !ok {
			continue
		}

		curve := CurveBetween(srcBox, dstBox)
		conn := Connection{
			Src:           c.From,
			Dst:           c.To,
			Label:         c.Label,
			Style:         c.Style,
			Start:         curve.Start,
			Control:       curve.Control,
			End:           curve.End,
			DstArrowAngle: ArrowAngle(curve),
		}
		if conn.Bidirectional() {
			conn.SrcArrowAngle = SourceArrowAngle(curve)
		}
		d.Connections = append(d.Connections, conn)
	}

	for _, z := range g.Zones {
		if box := zoneBounds(z, positions); box != nil {
			d.Zones = append(d.Zones, ZoneBox{Name: z.Name, Color: z.Color, Box: box})
		}
	}

	return d
}

func zoneBounds(z *scgraph.Zone, positions map[string]*geo.Box) *geo.Box {
	var minX, minY, maxX, maxY float64
	found := false
	for _, id := range z.Nodes {
		box, ok := positions[id]
		if !ok {
			// unknown member ids are skipped, same as dangling edges
			continue
		}
		if !found {
			minX, minY = box.TopLeft.X, box.TopLeft.Y
			maxX, maxY = box.TopLeft.X+box.Width, box.TopLeft.Y+box.Height
			found = true
			continue
		}
		if box.TopLeft.X < minX {
			minX = box.TopLeft.X
		}
		if box.TopLeft.Y < minY {
			minY = box.TopLeft.Y
		}
		if box.TopLeft.X+box.Width > maxX {
			maxX = box.TopLeft.X + box.Width
		}
		if box.TopLeft.Y+box.Height > maxY {
			maxY = box.TopLeft.Y + box.Height
		}
	}
	if !found {
		return nil
	}
	return geo.NewBox(
		geo.NewPoint(minX-ZONE_PADDING, minY-ZONE_PADDING),
		maxX-minX+2*ZONE_PADDING,
		maxY-minY+2*ZONE_PADDING,
	)
}
