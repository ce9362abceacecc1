// Package sclayouts assigns non-overlapping canvas positions to the
// nodes of a graph. Four strategies are available; all of them are
// pure, total, and deterministic: the same graph and canvas always
// produce bit-identical boxes, across process restarts included.
package sclayouts

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/lib/log"
	"github.com/scrawl-labs/scrawl/scgraph"
	"github.com/scrawl-labs/scrawl/sclayouts/scflow"
	"github.com/scrawl-labs/scrawl/sclayouts/scgrid"
	"github.com/scrawl-labs/scrawl/sclayouts/scradial"
)

type Mode string

const (
	ModeGrid       Mode = "grid"
	ModeVertical   Mode = "vertical"
	ModeHorizontal Mode = "horizontal"
	ModeRadial     Mode = "radial"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeGrid, ModeVertical, ModeHorizontal, ModeRadial:
		return Mode(s), nil
	case "", "auto":
		return ModeGrid, nil
	}
	return "", fmt.Errorf("unknown layout mode %q", s)
}

// Layout positions every node of g on a w x h canvas using the given
// mode. The result has exactly one box per node and nothing else.
// Negative canvas dimensions are a caller bug and panic.
func Layout(ctx context.Context, g *scgraph.Graph, w, h float64, mode Mode) map[string]*geo.Box {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("sclayouts: negative canvas dimensions %fx%f", w, h))
	}
	if len(g.Nodes) == 0 {
		return map[string]*geo.Box{}
	}

	log.Debug(ctx, "layout",
		slog.F("mode", string(mode)),
		slog.F("nodes", len(g.Nodes)),
		slog.F("connections", len(g.Connections)),
	)

	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}

	switch mode {
	case ModeVertical:
		groups := GroupByLayer(g, AssignLayers(g))
		return scflow.Vertical(groups, w, h)
	case ModeHorizontal:
		groups := GroupByLayer(g, AssignLayers(g))
		return scflow.Horizontal(groups, w, h)
	case ModeRadial:
		return scradial.Layout(g, w, h)
	default:
		return scgrid.Layout(ids, w, h)
	}
}
