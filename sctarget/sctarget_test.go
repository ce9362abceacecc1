package sctarget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/scgraph"
	"github.com/scrawl-labs/scrawl/sclayouts"
)

func buildGraph(t *testing.T, ids []string, edges [][2]string) *scgraph.Graph {
	t.Helper()
	g := scgraph.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(&scgraph.Node{ID: id, Label: id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddConnection(&scgraph.Connection{From: e[0], To: e[1]}))
	}
	return g
}

func TestComputeShapesInDeclarationOrder(t *testing.T) {
	g := buildGraph(t, []string{"web", "api", "db"}, [][2]string{{"web", "api"}, {"api", "db"}})
	g.Title = "stack"

	d := Compute(context.Background(), g, 1400, 900, sclayouts.ModeGrid)

	require.Len(t, d.Shapes, 3)
	assert.Equal(t, "web", d.Shapes[0].ID)
	assert.Equal(t, "api", d.Shapes[1].ID)
	assert.Equal(t, "db", d.Shapes[2].ID)
	assert.Equal(t, "stack", d.Title)
	for _, s := range d.Shapes {
		require.NotNil(t, s.Box, s.ID)
	}
}

func TestComputeConnectionsAnchoredAndAngled(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})

	d := Compute(context.Background(), g, 1400, 900, sclayouts.ModeHorizontal)

	require.Len(t, d.Connections, 1)
	c := d.Connections[0]
	require.NotNil(t, c.Start)
	require.NotNil(t, c.Control)
	require.NotNil(t, c.End)
	assert.Equal(t, "a", c.Src)
	assert.Equal(t, "b", c.Dst)

	// anchors land on box boundaries, not centers
	aBox := d.Shapes[0].Box
	assert.NotEqual(t, aBox.Center().X, c.Start.X)
}

func TestComputeSkipsDanglingConnections(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	g.Connections = append(g.Connections, &scgraph.Connection{From: "a", To: "ghost"})

	d := Compute(context.Background(), g, 1400, 900, sclayouts.ModeGrid)
	require.Len(t, d.Connections, 1)
	assert.Equal(t, "b", d.Connections[0].Dst)
}

func TestComputeBidirectionalGetsSecondHead(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, nil)
	require.NoError(t, g.AddConnection(&scgraph.Connection{
		From: "a", To: "b", Style: scgraph.StyleBidirectional,
	}))

	d := Compute(context.Background(), g, 1400, 900, sclayouts.ModeGrid)
	require.Len(t, d.Connections, 1)
	assert.NotZero(t, d.Connections[0].SrcArrowAngle)
	assert.True(t, d.Connections[0].Bidirectional())
}

func TestComputeRadialMarksHub(t *testing.T) {
	g := buildGraph(t, []string{"hub", "a", "b", "c"},
		[][2]string{{"hub", "a"}, {"hub", "b"}, {"hub", "c"}})

	d := Compute(context.Background(), g, 1400, 900, sclayouts.ModeRadial)

	hubs := 0
	for _, s := range d.Shapes {
		if s.Hub {
			hubs++
			assert.Equal(t, "hub", s.ID)
		}
	}
	assert.Equal(t, 1, hubs)
}

func TestComputeZoneBoxesWrapMembers(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, nil)
	g.UpsertZone(&scgraph.Zone{Name: "backend", Nodes: []string{"a", "b", "ghost"}})
	g.UpsertZone(&scgraph.Zone{Name: "empty", Nodes: []string{"ghost"}})

	d := Compute(context.Background(), g, 1400, 900, sclayouts.ModeGrid)

	require.Len(t, d.Zones, 1)
	z := d.Zones[0]
	assert.Equal(t, "backend", z.Name)

	for _, id := range []string{"a", "b"} {
		var box = shapeBox(t, d, id)
		assert.LessOrEqual(t, z.Box.TopLeft.X, box.TopLeft.X)
		assert.LessOrEqual(t, z.Box.TopLeft.Y, box.TopLeft.Y)
		assert.GreaterOrEqual(t, z.Box.TopLeft.X+z.Box.Width, box.TopLeft.X+box.Width)
		assert.GreaterOrEqual(t, z.Box.TopLeft.Y+z.Box.Height, box.TopLeft.Y+box.Height)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"a", "d"}})

	first := Compute(context.Background(), g, 1400, 900, sclayouts.ModeVertical)
	second := Compute(context.Background(), g, 1400, 900, sclayouts.ModeVertical)

	require.Equal(t, len(first.Shapes), len(second.Shapes))
	for i := range first.Shapes {
		assert.True(t, first.Shapes[i].Box.TopLeft.Equals(second.Shapes[i].Box.TopLeft))
	}
	require.Equal(t, len(first.Connections), len(second.Connections))
	for i := range first.Connections {
		assert.True(t, first.Connections[i].Control.Equals(second.Connections[i].Control))
		assert.Equal(t, first.Connections[i].DstArrowAngle, second.Connections[i].DstArrowAngle)
	}
}

func shapeBox(t *testing.T, d *Diagram, id string) *geo.Box {
	t.Helper()
	for _, s := range d.Shapes {
		if s.ID == id {
			return s.Box
		}
	}
	t.Fatalf("no shape %q", id)
	return nil
}
