package sclayouts

import (
	"sort"

	"github.com/scrawl-labs/scrawl/scgraph"
)

// AssignLayers maps every node id to a non-negative layer index.
//
// With no connections at all, the declaration index is the layer, so
// edgeless graphs still fan out deterministically. Otherwise layers
// come from a breadth-first walk starting at every source node (zero
// incoming connections) at once. Revisiting a node via a longer path
// keeps the maximum depth seen: a child never sits above or left of
// any of its parents. Nodes the walk never reaches (cycle members,
// disconnected nodes) are appended below everything else, one layer
// each, in declaration order.
//
// Connections with a missing endpoint are ignored; the analysis step
// may legitimately hand us partial graphs.
func AssignLayers(g *scgraph.Graph) map[string]int {
	layers := make(map[string]int, len(g.Nodes))

	if len(g.Connections) == 0 {
		for i, n := range g.Nodes {
			layers[n.ID] = i
		}
		return layers
	}

	incoming := make(map[string]int, len(g.Nodes))
	outgoing := make(map[string][]string, len(g.Nodes))
	for _, c := range g.Connections {
		if !g.HasNode(c.From) || !g.HasNode(c.To) {
			continue
		}
		incoming[c.To]++
		outgoing[c.From] = append(outgoing[c.From], c.To)
	}

	type visit struct {
		id    string
		depth int
	}
	var queue []visit
	for _, n := range g.Nodes {
		if incoming[n.ID] == 0 {
			queue = append(queue, visit{n.ID, 0})
		}
	}

	visited := make(map[string]int, len(g.Nodes))
	for _, v := range queue {
		visited[v.id] = 0
	}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, next := range outgoing[curr.id] {
			depth := curr.depth + 1
			// the longest simple path has at most len(Nodes)-1 edges;
			// anything deeper means a cycle reachable from a source
			if depth >= len(g.Nodes) {
				continue
			}
			if seen, ok := visited[next]; ok && seen >= depth {
				continue
			}
			visited[next] = depth
			queue = append(queue, visit{next, depth})
		}
	}

	maxSeen := -1
	for _, depth := range visited {
		if depth > maxSeen {
			maxSeen = depth
		}
	}

	// unreached nodes stack below everything, each on its own layer
	next := maxSeen + 1
	for _, n := range g.Nodes {
		if depth, ok := visited[n.ID]; ok {
			layers[n.ID] = depth
		} else {
			layers[n.ID] = next
			next++
		}
	}
	return layers
}

// GroupByLayer turns a layer assignment into ordered groups: layers
// ascending, declaration order within a layer. This secondary sort is
// what makes every layout's left-to-right and top-to-bottom node
// ordering reproducible.
func GroupByLayer(g *scgraph.Graph, layers map[string]int) [][]string {
	byLayer := make(map[int][]string)
	for _, n := range g.Nodes {
		layer := layers[n.ID]
		byLayer[layer] = append(byLayer[layer], n.ID)
	}

	keys := make([]int, 0, len(byLayer))
	for layer := range byLayer {
		keys = append(keys, layer)
	}
	sort.Ints(keys)

	groups := make([][]string, 0, len(keys))
	for _, layer := range keys {
		groups = append(groups, byLayer[layer])
	}
	return groups
}
