// Package scflow implements the two layered strategies: layers as
// stacked rows (vertical) or as left-to-right columns (horizontal,
// the pipeline view). Both consume the grouped layer assignment.
package scflow

import (
	"math"

	"github.com/scrawl-labs/scrawl/lib/geo"
)

const (
	MARGIN   = 60
	NODE_GAP = 30

	PREFERRED_W = 220
	PREFERRED_H = 110
)

// Vertical stacks one row per layer, top to bottom. Row height is
// shared across layers; within a row nodes shrink to fit side by side
// and the row is centered independently of the others. Rows of
// different node counts therefore get different offsets; the jagged
// alignment is intentional.
func Vertical(groups [][]string, w, h float64) map[string]*geo.Box {
	positions := make(map[string]*geo.Box)
	nLayers := len(groups)
	if nLayers == 0 {
		return positions
	}

	availW := w - 2*MARGIN
	availH := h - 2*MARGIN
	rowH := availH / float64(nLayers)
	nodeH := math.Min(PREFERRED_H, rowH-NODE_GAP/2)

	for li, group := range groups {
		n := len(group)
		if n == 0 {
			continue
		}
		nodeW := math.Min(PREFERRED_W, (availW-float64(n-1)*NODE_GAP)/float64(n))
		rowW := float64(n)*nodeW + float64(n-1)*NODE_GAP
		startX := MARGIN + (availW-rowW)/2
		y := MARGIN + float64(li)*rowH + (rowH-nodeH)/2

		for ni, id := range group {
			x := startX + float64(ni)*(nodeW+NODE_GAP)
			positions[id] = geo.NewBox(geo.NewPoint(x, y), nodeW, nodeH)
		}
	}

	return positions
}

// Horizontal is Vertical with the axes swapped: layers become columns
// left to right, nodes stack top to bottom within a column, and each
// column is vertically centered on its own.
func Horizontal(groups [][]string, w, h float64) map[string]*geo.Box {
	positions := make(map[string]*geo.Box)
	nLayers := len(groups)
	if nLayers == 0 {
		return positions
	}

	availW := w - 2*MARGIN
	availH := h - 2*MARGIN
	colW := availW / float64(nLayers)
	nodeW := math.Min(PREFERRED_W, colW-NODE_GAP/2)

	for li, group := range groups {
		n := len(group)
		if n == 0 {
			continue
		}
		nodeH := math.Min(PREFERRED_H, (availH-float64(n-1)*NODE_GAP)/float64(n))
		colH := float64(n)*nodeH + float64(n-1)*NODE_GAP
		startY := MARGIN + (availH-colH)/2
		x := MARGIN + float64(li)*colW + (colW-nodeW)/2

		for ni, id := range group {
			y := startY + float64(ni)*(nodeH+NODE_GAP)
			positions[id] = geo.NewBox(geo.NewPoint(x, y), nodeW, nodeH)
		}
	}

	return positions
}
