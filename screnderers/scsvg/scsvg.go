// Package scsvg renders a computed diagram to SVG. All geometry comes
// in already positioned; this package only draws.
package scsvg

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/scrawl-labs/scrawl/lib/color"
	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/scicons"
	"github.com/scrawl-labs/scrawl/screnderers/scsketch"
	"github.com/scrawl-labs/scrawl/sctarget"
	"github.com/scrawl-labs/scrawl/scthemes"
)

const (
	FONT_FAMILY = "'Segoe Print','Comic Sans MS',system-ui,sans-serif"

	LABEL_SIZE       = 15
	DESCRIPTION_SIZE = 11
	ZONE_LABEL_SIZE  = 12
	EDGE_LABEL_SIZE  = 11
	TITLE_SIZE       = 22

	ARROW_LENGTH = 12.0
	// wing spread of the arrowhead off the approach direction
	ARROW_WING = math.Pi * 0.82

	ACCENT_BAR_H = 5.0
	ICON_SIZE    = 26.0
)

// Render writes the diagram as a standalone SVG document.
func Render(w io.Writer, d *sctarget.Diagram, theme scthemes.Theme) error {
	canvas := svg.New(w)
	canvas.Start(int(d.Width), int(d.Height))
	defer canvas.End()

	canvas.Rect(0, 0, int(d.Width), int(d.Height),
		fmt.Sprintf("fill:%s", theme.Colors.Background))

	if d.Title != "" {
		canvas.Text(int(d.Width)/2, 38, d.Title,
			textStyle(theme.Colors.Text, TITLE_SIZE, "middle", true))
	}

	for _, z := range d.Zones {
		drawZone(canvas, z, theme)
	}
	for _, c := range d.Connections {
		drawConnection(canvas, &c, theme)
	}
	for _, s := range d.Shapes {
		if s.Box == nil {
			continue
		}
		drawShape(canvas, &s, theme)
	}
	return nil
}

func drawZone(canvas *svg.SVG, z sctarget.ZoneBox, theme scthemes.Theme) {
	stroke := z.Color
	if color.Validate(stroke) != nil {
		stroke = theme.Colors.TextMuted
	}
	canvas.Roundrect(
		int(z.Box.TopLeft.X), int(z.Box.TopLeft.Y),
		int(z.Box.Width), int(z.Box.Height), 10, 10,
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5;stroke-dasharray:7,5;stroke-opacity:0.8", stroke))
	canvas.Text(
		int(z.Box.TopLeft.X)+12, int(z.Box.TopLeft.Y)-8, z.Name,
		textStyle(stroke, ZONE_LABEL_SIZE, "start", true))
}

func drawConnection(canvas *svg.SVG, c *sctarget.Connection, theme scthemes.Theme) {
	curve := c.Curve()
	stroke := theme.Colors.TextMuted

	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:2;stroke-linecap:round", stroke)
	if c.Dashed() {
		style += ";stroke-dasharray:6,5"
	}
	canvas.Path(scsketch.CurvePath(curve, scsketch.DEFAULT_ROUGHNESS), style)

	drawArrowhead(canvas, c.End, c.DstArrowAngle, stroke)
	if c.Bidirectional() {
		drawArrowhead(canvas, c.Start, c.SrcArrowAngle, stroke)
	}

	if c.Label != "" {
		mid := curve.At(0.5)
		canvas.Text(int(mid.X), int(mid.Y)-6, c.Label,
			textStyle(theme.Colors.TextMuted, EDGE_LABEL_SIZE, "middle", false))
	}
}

// drawArrowhead places a filled triangle with its tip at p, pointing
// along angle. The wings fold back at ARROW_WING on either side.
func drawArrowhead(canvas *svg.SVG, p *geo.Point, angle float64, fill string) {
	xs := []int{int(p.X)}
	ys := []int{int(p.Y)}
	for _, wing := range []float64{angle + ARROW_WING, angle - ARROW_WING} {
		xs = append(xs, int(p.X+ARROW_LENGTH*math.Cos(wing)))
		ys = append(ys, int(p.Y+ARROW_LENGTH*math.Sin(wing)))
	}
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s", fill))
}

func drawShape(canvas *svg.SVG, s *sctarget.Shape, theme scthemes.Theme) {
	accent := s.Color
	if color.Validate(accent) != nil {
		accent = theme.Colors.Accent
	}

	cardStyle := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", theme.Colors.Card, theme.Colors.Border)
	if s.Hub {
		cardStyle = fmt.Sprintf("fill:%s;stroke:%s;stroke-width:3", theme.Colors.Card, accent)
	}
	canvas.Path(scsketch.RectPath(s.Box, scsketch.DEFAULT_ROUGHNESS), cardStyle)

	// accent bar along the top edge
	bar := geo.NewBox(s.Box.TopLeft.Copy(), s.Box.Width, ACCENT_BAR_H)
	canvas.Path(scsketch.RectPath(bar, scsketch.DEFAULT_ROUGHNESS/2),
		fmt.Sprintf("fill:%s;stroke:none", accent))

	center := s.Box.Center()
	labelY := center.Y + float64(LABEL_SIZE)/3

	if s.Icon != "" {
		iconY := s.Box.TopLeft.Y + ACCENT_BAR_H + 10 + ICON_SIZE/2
		io.WriteString(canvas.Writer,
			scicons.Markup(s.Icon, center.X, iconY, ICON_SIZE, accent))
		labelY = iconY + ICON_SIZE/2 + 18
	}

	label := s.Label
	if label == "" {
		label = s.ID
	}
	canvas.Text(int(center.X), int(labelY), label,
		textStyle(theme.Colors.Text, LABEL_SIZE, "middle", true))

	if s.Description != "" {
		canvas.Text(int(center.X), int(labelY)+18, s.Description,
			textStyle(theme.Colors.TextMuted, DESCRIPTION_SIZE, "middle", false))
	}
}

func textStyle(fill string, size int, anchor string, bold bool) string {
	weight := "400"
	if bold {
		weight = "600"
	}
	return fmt.Sprintf("fill:%s;font-size:%dpx;font-family:%s;font-weight:%s;text-anchor:%s",
		fill, size, FONT_FAMILY, weight, anchor)
}
