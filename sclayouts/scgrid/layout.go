// Package scgrid is the default layout: a column/row grid filling the
// canvas, independent of connections.
package scgrid

import (
	"math"

	"github.com/scrawl-labs/scrawl/lib/geo"
)

const (
	MARGIN   = 60
	CELL_GAP = 24

	PREFERRED_W = 320
	PREFERRED_H = 200
)

// Columns is a step function of the node count: up to 3 nodes sit on
// a single row, up to 9 nodes use 3 columns, anything bigger uses 4.
func Columns(n int) int {
	switch {
	case n <= 3:
		return n
	case n <= 9:
		return 3
	default:
		return 4
	}
}

// Layout arranges ids into a grid. Cells shrink uniformly under
// crowding and never overlap; the grid block is horizontally centered
// and starts at the top margin. An incomplete final row is centered
// within that row rather than left-aligned.
func Layout(ids []string, w, h float64) map[string]*geo.Box {
	positions := make(map[string]*geo.Box, len(ids))
	n := len(ids)
	if n == 0 {
		return positions
	}

	cols := Columns(n)
	rows := int(math.Ceil(float64(n) / float64(cols)))

	availW := w - 2*MARGIN
	availH := h - 2*MARGIN

	cellW := math.Min(PREFERRED_W, (availW-float64(cols-1)*CELL_GAP)/float64(cols))
	cellH := math.Min(PREFERRED_H, (availH-float64(rows-1)*CELL_GAP)/float64(rows))

	blockW := float64(cols)*cellW + float64(cols-1)*CELL_GAP
	startX := MARGIN + (availW-blockW)/2
	startY := float64(MARGIN)

	for r := 0; r < rows; r++ {
		rowStart := r * cols
		rowCount := n - rowStart
		if rowCount > cols {
			rowCount = cols
		}

		// center an incomplete final row within the block
		rowW := float64(rowCount)*cellW + float64(rowCount-1)*CELL_GAP
		rowX := startX + (blockW-rowW)/2

		for c := 0; c < rowCount; c++ {
			id := ids[rowStart+c]
			x := rowX + float64(c)*(cellW+CELL_GAP)
			y := startY + float64(r)*(cellH+CELL_GAP)
			positions[id] = geo.NewBox(geo.NewPoint(x, y), cellW, cellH)
		}
	}

	return positions
}
