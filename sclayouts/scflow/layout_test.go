package scflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerticalRowsAreIndependentlyCentered(t *testing.T) {
	groups := [][]string{{"a"}, {"b", "c", "d"}, {"e", "f"}}
	positions := Vertical(groups, 1400, 900)
	require.Len(t, positions, 6)

	// rows stack top to bottom in layer order
	assert.Less(t, positions["a"].TopLeft.Y, positions["b"].TopLeft.Y)
	assert.Less(t, positions["b"].TopLeft.Y, positions["e"].TopLeft.Y)

	// row height is shared
	assert.Equal(t, positions["a"].Height, positions["b"].Height)
	assert.Equal(t, positions["b"].Height, positions["e"].Height)

	// each row is centered on its own: the single node of row 0 is
	// centered while row 1 spreads around the same midline
	mid := 700.0
	assert.InDelta(t, mid, positions["a"].Center().X, 0.001)
	assert.InDelta(t, mid, positions["c"].Center().X, 0.001)
	assert.Less(t, positions["b"].Center().X, mid)
	assert.Greater(t, positions["d"].Center().X, mid)
}

func TestVerticalCrowdedRowShrinksWidth(t *testing.T) {
	var wide []string
	for i := 0; i < 10; i++ {
		wide = append(wide, string(rune('a'+i)))
	}
	positions := Vertical([][]string{wide}, 900, 600)
	assert.Less(t, positions["a"].Width, float64(PREFERRED_W))
}

func TestHorizontalColumnsAreIndependentlyCentered(t *testing.T) {
	groups := [][]string{{"a"}, {"b", "c"}}
	positions := Horizontal(groups, 1000, 1000)

	// layers advance left to right
	assert.Less(t, positions["a"].TopLeft.X, positions["b"].TopLeft.X)
	// within a column nodes stack top to bottom
	assert.Less(t, positions["b"].TopLeft.Y, positions["c"].TopLeft.Y)
	// column width is shared
	assert.Equal(t, positions["a"].Width, positions["b"].Width)

	// each column is vertically centered on its own
	mid := 500.0
	assert.InDelta(t, mid, positions["a"].Center().Y, 0.001)
	assert.InDelta(t, mid, (positions["b"].Center().Y+positions["c"].Center().Y)/2, 0.001)
}

func TestEmptyGroups(t *testing.T) {
	assert.Empty(t, Vertical(nil, 1400, 900))
	assert.Empty(t, Horizontal(nil, 1400, 900))
}
