// Package scgraph holds the node/connection/zone data structure that
// layout and rendering consume. The model is plain data: it is created
// wholesale from an analysis payload or user edits, and every layout
// output is recomputable from it.
package scgraph

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidNodeID is returned by AddNode when the node ID is empty
	// after minting. Node IDs must be non-empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by AddNode when a node with the
	// same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by AddConnection when the From
	// node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by AddConnection when the To
	// node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Style is the visual style tag of a connection.
type Style string

const (
	StyleArrow         Style = "arrow"
	StyleDashed        Style = "dashed"
	StyleBidirectional Style = "bidirectional"
	StyleCurved        Style = "curved"
	StyleCurvedDashed  Style = "curved_dashed"
)

type Node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`

	Shape string `json:"shape,omitempty"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`

	// Layer is an optional explicit hint from the analysis step. Layout
	// recomputes layers from connections and only falls back to this.
	Layer *int   `json:"layer,omitempty"`
	Zone  string `json:"zone,omitempty"`
}

// Connection is a directed edge between two nodes. Connections define
// the graph used for layer assignment.
type Connection struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
	Style Style  `json:"style,omitempty"`
}

// Zone is a named grouping of nodes, drawn as a bounding box around
// its members' positions. Zones never affect layout.
type Zone struct {
	Name  string   `json:"name"`
	Color string   `json:"color,omitempty"`
	Nodes []string `json:"nodes"`
}

type Graph struct {
	Title       string        `json:"title,omitempty"`
	Nodes       []*Node       `json:"nodes"`
	Connections []*Connection `json:"connections"`
	Zones       []*Zone       `json:"zones,omitempty"`
}

func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) HasNode(id string) bool {
	return g.GetNode(id) != nil
}

func (g *Graph) GetNode(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// AddNode appends a node, minting a UUID when the ID is empty.
func (g *Graph) AddNode(n *Node) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if g.HasNode(n.ID) {
		return ErrDuplicateNodeID
	}
	g.Nodes = append(g.Nodes, n)
	return nil
}

// RemoveNode deletes the node and everything referencing it: every
// connection with the node as an endpoint and every zone membership.
// After RemoveNode no connection or zone may reference the id.
func (g *Graph) RemoveNode(id string) {
	nodes := g.Nodes[:0]
	for _, n := range g.Nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	g.Nodes = nodes

	conns := g.Connections[:0]
	for _, c := range g.Connections {
		if c.From != id && c.To != id {
			conns = append(conns, c)
		}
	}
	g.Connections = conns

	for _, z := range g.Zones {
		members := z.Nodes[:0]
		for _, member := range z.Nodes {
			if member != id {
				members = append(members, member)
			}
		}
		z.Nodes = members
	}
}

// AddConnection validates both endpoints before appending.
func (g *Graph) AddConnection(c *Connection) error {
	if !g.HasNode(c.From) {
		return ErrUnknownSourceNode
	}
	if !g.HasNode(c.To) {
		return ErrUnknownTargetNode
	}
	if c.Style == "" {
		c.Style = StyleArrow
	}
	g.Connections = append(g.Connections, c)
	return nil
}

// RemoveConnection drops every connection matching from->to.
func (g *Graph) RemoveConnection(from, to string) {
	conns := g.Connections[:0]
	for _, c := range g.Connections {
		if c.From != from || c.To != to {
			conns = append(conns, c)
		}
	}
	g.Connections = conns
}

// UpsertZone replaces the zone with the same name or appends it.
// Member ids that don't resolve to nodes are kept; rendering skips
// them, the same way layout skips dangling connections.
func (g *Graph) UpsertZone(z *Zone) {
	for i, existing := range g.Zones {
		if existing.Name == z.Name {
			g.Zones[i] = z
			return
		}
	}
	g.Zones = append(g.Zones, z)
}

// Degree returns the total degree (incoming + outgoing) of a node,
// counting only connections whose other endpoint exists.
func (g *Graph) Degree(id string) int {
	degree := 0
	for _, c := range g.Connections {
		if c.From == id && g.HasNode(c.To) {
			degree++
		}
		if c.To == id && g.HasNode(c.From) {
			degree++
		}
	}
	return degree
}

// Clone deep-copies the graph. History snapshots rely on clones
// sharing no pointers with the live graph.
func (g *Graph) Clone() *Graph {
	clone := &Graph{Title: g.Title}
	for _, n := range g.Nodes {
		n2 := *n
		if n.Layer != nil {
			layer := *n.Layer
			n2.Layer = &layer
		}
		clone.Nodes = append(clone.Nodes, &n2)
	}
	for _, c := range g.Connections {
		c2 := *c
		clone.Connections = append(clone.Connections, &c2)
	}
	for _, z := range g.Zones {
		z2 := Zone{Name: z.Name, Color: z.Color}
		z2.Nodes = append(z2.Nodes, z.Nodes...)
		clone.Zones = append(clone.Zones, &z2)
	}
	return clone
}
