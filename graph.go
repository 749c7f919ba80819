package pathfinding

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Neighbor is one adjacency entry: the arena index of the neighboring node,
// the traversal cost, and the connection the entry came from.
type Neighbor struct {
	Node       int
	Cost       float64
	Connection string
}

// GraphNode is a node in the built routing graph.
type GraphNode struct {
	ID        string
	Position  orb.Point
	Neighbors []Neighbor
}

// Graph is the routing structure derived from the current waypoints and
// connections: an arena of nodes with an id-to-index lookup table. A graph is
// built fresh per search and must not be mutated while a search is running.
type Graph struct {
	Nodes []GraphNode
	index map[string]int
}

// NodeIndex returns the arena index for a node id.
func (g *Graph) NodeIndex(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// BuildGraph converts waypoints and connections into a routing graph. A curved
// connection's stored cost is scaled by the ratio of its arc length to the
// straight-line distance between its endpoints, so per-length costs account
// for the longer geometry; a zero straight-line distance is treated as 1. A
// bidirectional connection yields one adjacency entry per direction.
// Connections referencing unknown node ids are skipped so partial data still
// routes.
func BuildGraph(nodes []Node, connections []Connection) *Graph {
	g := &Graph{
		Nodes: make([]GraphNode, 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}
	for _, n := range nodes {
		g.index[n.ID] = len(g.Nodes)
		g.Nodes = append(g.Nodes, GraphNode{ID: n.ID, Position: n.Position})
	}

	for _, c := range connections {
		from, ok := g.index[c.From]
		if !ok {
			continue
		}
		to, ok := g.index[c.To]
		if !ok {
			continue
		}

		cost := c.Cost
		if curve, ok := c.Shape.(Curve); ok {
			straight := planar.Distance(g.Nodes[from].Position, g.Nodes[to].Position)
			if straight == 0 {
				straight = 1
			}
			arc := curve.cubic(g.Nodes[from].Position, g.Nodes[to].Position).ArcLength(defaultArcLengthSegments)
			cost *= arc / straight
		}

		g.Nodes[from].Neighbors = append(g.Nodes[from].Neighbors, Neighbor{
			Node:       to,
			Cost:       cost,
			Connection: c.ID,
		})
		if c.Bidirectional {
			g.Nodes[to].Neighbors = append(g.Nodes[to].Neighbors, Neighbor{
				Node:       from,
				Cost:       cost,
				Connection: c.ID,
			})
		}
	}
	return g
}
