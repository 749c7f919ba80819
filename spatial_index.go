package pathfinding

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// rtreePadding keeps degenerate extents strictly positive for rtreego.
const rtreePadding = 1e-9

// nodeEntry wraps a waypoint for R-tree storage.
type nodeEntry struct {
	node Node
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.rect
}

// connectionEntry wraps a connection and its bounding box for R-tree storage.
type connectionEntry struct {
	conn Connection
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *connectionEntry) Bounds() rtreego.Rect {
	return e.rect
}

// SpatialIndex answers nearest-waypoint and region queries over the current
// map data, backing the hosting application's hit-testing. Build it fresh
// after edits; it is never mutated in place.
type SpatialIndex struct {
	nodes       *rtreego.Rtree
	connections *rtreego.Rtree
}

// NewSpatialIndex indexes waypoints by position and connections by bounding
// box. Straight connections use the box spanned by their endpoints, curved
// ones the analytic bound of their Bézier geometry. Connections referencing
// unknown nodes are skipped, same as in graph building.
func NewSpatialIndex(nodes []Node, connections []Connection) *SpatialIndex {
	byID := make(map[string]Node, len(nodes))

	nodeTree := rtreego.NewTree(2, 25, 50)
	for _, n := range nodes {
		byID[n.ID] = n
		rect, err := boundRect(orb.MultiPoint{n.Position}.Bound())
		if err != nil {
			continue
		}
		nodeTree.Insert(&nodeEntry{node: n, rect: rect})
	}

	connTree := rtreego.NewTree(2, 25, 50)
	for _, c := range connections {
		from, ok := byID[c.From]
		if !ok {
			continue
		}
		to, ok := byID[c.To]
		if !ok {
			continue
		}

		var bound orb.Bound
		if curve, isCurve := c.Shape.(Curve); isCurve {
			bound = curve.cubic(from.Position, to.Position).Bound()
		} else {
			bound = orb.MultiPoint{from.Position, to.Position}.Bound()
		}
		rect, err := boundRect(bound)
		if err != nil {
			continue
		}
		connTree.Insert(&connectionEntry{conn: c, rect: rect})
	}

	return &SpatialIndex{nodes: nodeTree, connections: connTree}
}

// NearestNode returns the waypoint closest to an image-space position.
func (si *SpatialIndex) NearestNode(p orb.Point) (Node, bool) {
	item := si.nodes.NearestNeighbor(rtreego.Point{p[0], p[1]})
	if item == nil {
		return Node{}, false
	}
	return item.(*nodeEntry).node, true
}

// ConnectionsIn returns the connections whose bounding boxes intersect the
// given region.
func (si *SpatialIndex) ConnectionsIn(b orb.Bound) []Connection {
	rect, err := boundRect(b)
	if err != nil {
		return nil
	}
	items := si.connections.SearchIntersect(rect)
	conns := make([]Connection, 0, len(items))
	for _, item := range items {
		conns = append(conns, item.(*connectionEntry).conn)
	}
	return conns
}

// boundRect converts an orb bound to an rtreego rect, padding degenerate
// extents so zero-width boxes stay valid.
func boundRect(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{b.Max[0] - b.Min[0] + rtreePadding, b.Max[1] - b.Min[1] + rtreePadding},
	)
}
