package scgraph

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads the analysis payload contract: a JSON object with
// nodes, connections, and optional zones. Declaration order of nodes
// is preserved; it is the tie-breaker every layout strategy uses.
func Decode(r io.Reader) (*Graph, error) {
	var g Graph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("decoding graph: %w", err)
	}
	if err := g.Check(); err != nil {
		return nil, err
	}
	for _, c := range g.Connections {
		if c.Style == "" {
			c.Style = StyleArrow
		}
	}
	return &g, nil
}

func (g *Graph) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// Check validates the structural invariants a decoded payload must
// hold before layout may run.
func (g *Graph) Check() error {
	seen := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return ErrInvalidNodeID
		}
		if _, ok := seen[n.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	// Dangling connections are allowed in the payload: the analysis
	// step may produce partial graphs. Layout drops them silently.
	return nil
}
