package pathfinding

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Node represents a routable waypoint in image space.
type Node struct {
	ID       string    `json:"id"`
	Position orb.Point `json:"position"`
}

// Shape describes the geometry of a connection between two waypoints.
type Shape interface {
	// Sample returns segments+1 points along the shape from one endpoint to the other.
	Sample(from, to orb.Point, segments int) orb.LineString

	// Length returns the geometric length of the shape in pixels.
	Length(from, to orb.Point) float64
}

// Straight is an edge shape that runs directly between its endpoints.
type Straight struct{}

// Sample returns evenly spaced points on the segment between from and to.
func (Straight) Sample(from, to orb.Point, segments int) orb.LineString {
	if segments < 1 {
		segments = 1
	}
	line := make(orb.LineString, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		line = append(line, orb.Point{
			from[0] + (to[0]-from[0])*t,
			from[1] + (to[1]-from[1])*t,
		})
	}
	return line
}

// Length returns the Euclidean distance between the endpoints.
func (Straight) Length(from, to orb.Point) float64 {
	return planar.Distance(from, to)
}

// Curve is an edge shape following a cubic Bézier through two control points.
type Curve struct {
	Control1 orb.Point `json:"control1"`
	Control2 orb.Point `json:"control2"`
}

// Sample returns segments+1 points along the Bézier from one endpoint to the other.
func (c Curve) Sample(from, to orb.Point, segments int) orb.LineString {
	return c.cubic(from, to).Polyline(segments)
}

// Length returns the approximate arc length of the Bézier.
func (c Curve) Length(from, to orb.Point) float64 {
	return c.cubic(from, to).ArcLength(defaultArcLengthSegments)
}

func (c Curve) cubic(from, to orb.Point) Cubic {
	return Cubic{P0: from, P1: c.Control1, P2: c.Control2, P3: to}
}

// Connection represents a weighted, optionally curved link between two waypoints.
type Connection struct {
	ID            string  `json:"id"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Cost          float64 `json:"cost"`
	Bidirectional bool    `json:"bidirectional"`

	// CostOverride marks the cost as manually fixed. The hosting application
	// uses it to decide whether a terrain edit should recompute the cost via
	// EdgeCost; the routing core always takes Cost as given.
	CostOverride bool `json:"costOverride"`

	Shape Shape `json:"-"`
}

// Path is the result of a search: the node ids from source to target, the
// connections traversed between them, and the total accumulated cost.
type Path struct {
	Nodes       []string `json:"nodes"`
	Connections []string `json:"connections"`
	Cost        float64  `json:"cost"`
}
