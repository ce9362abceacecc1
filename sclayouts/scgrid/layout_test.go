package scgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	for n, want := range map[int]int{
		1: 1, 2: 2, 3: 3,
		4: 3, 9: 3,
		10: 4, 25: 4,
	} {
		assert.Equal(t, want, Columns(n), "n=%d", n)
	}
}

func TestLayoutThreeNodesSingleRow(t *testing.T) {
	positions := Layout([]string{"a", "b", "c"}, 1400, 900)
	require.Len(t, positions, 3)

	a, b, c := positions["a"], positions["b"], positions["c"]

	// one row of three equally sized cells
	assert.Equal(t, a.TopLeft.Y, b.TopLeft.Y)
	assert.Equal(t, b.TopLeft.Y, c.TopLeft.Y)
	assert.Equal(t, a.Width, b.Width)
	assert.Equal(t, b.Width, c.Width)
	assert.Equal(t, a.Height, c.Height)

	// the row starts at the top margin
	assert.Equal(t, float64(MARGIN), a.TopLeft.Y)

	// horizontally centered: left gap mirrors right gap
	leftGap := a.TopLeft.X
	rightGap := 1400 - (c.TopLeft.X + c.Width)
	assert.InDelta(t, leftGap, rightGap, 0.001)
}

func TestLayoutIncompleteLastRowIsCentered(t *testing.T) {
	// 4 nodes at 3 columns: second row holds a single node
	positions := Layout([]string{"a", "b", "c", "d"}, 1400, 900)
	require.Len(t, positions, 4)

	b := positions["b"]
	d := positions["d"]
	assert.Greater(t, d.TopLeft.Y, positions["a"].TopLeft.Y)
	// the lone node sits under the middle column, not the first
	assert.Equal(t, b.TopLeft.X, d.TopLeft.X)
}

func TestLayoutCellsShrinkUnderCrowding(t *testing.T) {
	few := Layout([]string{"a", "b", "c"}, 600, 400)
	assert.Less(t, few["a"].Width, float64(PREFERRED_W))

	var ids []string
	for i := 0; i < 16; i++ {
		ids = append(ids, string(rune('a'+i)))
	}
	many := Layout(ids, 600, 400)
	assert.Less(t, many["a"].Height, float64(PREFERRED_H))

	// no overlap even when crowded
	for i, id1 := range ids {
		for _, id2 := range ids[i+1:] {
			b1, b2 := many[id1], many[id2]
			overlap := b1.TopLeft.X < b2.TopLeft.X+b2.Width &&
				b2.TopLeft.X < b1.TopLeft.X+b1.Width &&
				b1.TopLeft.Y < b2.TopLeft.Y+b2.Height &&
				b2.TopLeft.Y < b1.TopLeft.Y+b1.Height
			assert.False(t, overlap, "%s overlaps %s", id1, id2)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	assert.Empty(t, Layout(nil, 1400, 900))
}
