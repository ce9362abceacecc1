// Package scradial is the hub-and-spoke layout: the highest-degree
// node anchors the center and everything else sits on a circle
// around it.
package scradial

import (
	"math"

	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/scgraph"
)

const (
	NODE_W = 180
	NODE_H = 100

	// the hub is drawn 20% larger to visually anchor the diagram
	HUB_SCALE = 1.2
)

// Hub picks the node with the highest total degree. Ties break toward
// the first-declared node, so the choice is stable across runs.
func Hub(g *scgraph.Graph) *scgraph.Node {
	var hub *scgraph.Node
	best := -1
	for _, n := range g.Nodes {
		if degree := g.Degree(n.ID); degree > best {
			best = degree
			hub = n
		}
	}
	return hub
}

func Layout(g *scgraph.Graph, w, h float64) map[string]*geo.Box {
	positions := make(map[string]*geo.Box, len(g.Nodes))
	if len(g.Nodes) == 0 {
		return positions
	}

	cx := w / 2
	cy := h / 2

	if len(g.Nodes) == 1 {
		only := g.Nodes[0]
		positions[only.ID] = geo.NewBox(geo.NewPoint(cx-NODE_W/2, cy-NODE_H/2), NODE_W, NODE_H)
		return positions
	}

	hub := Hub(g)
	hubW := NODE_W * HUB_SCALE
	hubH := NODE_H * HUB_SCALE
	positions[hub.ID] = geo.NewBox(geo.NewPoint(cx-hubW/2, cy-hubH/2), hubW, hubH)

	outer := make([]*scgraph.Node, 0, len(g.Nodes)-1)
	for _, n := range g.Nodes {
		if n.ID != hub.ID {
			outer = append(outer, n)
		}
	}

	// margin proportional to the standard node width keeps spokes on
	// the canvas
	radius := math.Min(w, h)/2 - NODE_W*0.75
	if radius < hubW {
		radius = hubW
	}

	m := float64(len(outer))
	for i, n := range outer {
		// start straight up and proceed clockwise, index-driven
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/m
		x := cx + radius*math.Cos(angle) - NODE_W/2
		y := cy + radius*math.Sin(angle) - NODE_H/2
		positions[n.ID] = geo.NewBox(geo.NewPoint(x, y), NODE_W, NODE_H)
	}

	return positions
}
