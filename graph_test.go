package pathfinding

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphDirectionality(t *testing.T) {
	nodes := []Node{
		{ID: "a", Position: orb.Point{0, 0}},
		{ID: "b", Position: orb.Point{100, 0}},
	}

	t.Run("bidirectional connection yields two entries", func(t *testing.T) {
		g := BuildGraph(nodes, []Connection{
			{ID: "ab", From: "a", To: "b", Cost: 2, Bidirectional: true},
		})

		ai, ok := g.NodeIndex("a")
		require.True(t, ok)
		bi, ok := g.NodeIndex("b")
		require.True(t, ok)

		require.Len(t, g.Nodes[ai].Neighbors, 1)
		require.Len(t, g.Nodes[bi].Neighbors, 1)
		assert.Equal(t, Neighbor{Node: bi, Cost: 2, Connection: "ab"}, g.Nodes[ai].Neighbors[0])
		assert.Equal(t, Neighbor{Node: ai, Cost: 2, Connection: "ab"}, g.Nodes[bi].Neighbors[0])
	})

	t.Run("directed connection yields one entry", func(t *testing.T) {
		g := BuildGraph(nodes, []Connection{
			{ID: "ab", From: "a", To: "b", Cost: 2},
		})

		ai, _ := g.NodeIndex("a")
		bi, _ := g.NodeIndex("b")
		assert.Len(t, g.Nodes[ai].Neighbors, 1)
		assert.Empty(t, g.Nodes[bi].Neighbors)
	})
}

func TestBuildGraphSkipsDanglingConnections(t *testing.T) {
	nodes := []Node{
		{ID: "a", Position: orb.Point{0, 0}},
		{ID: "b", Position: orb.Point{100, 0}},
	}
	connections := []Connection{
		{ID: "ab", From: "a", To: "b", Cost: 1, Bidirectional: true},
		{ID: "ax", From: "a", To: "deleted", Cost: 1, Bidirectional: true},
		{ID: "xb", From: "ghost", To: "b", Cost: 1, Bidirectional: true},
	}

	g := BuildGraph(nodes, connections)

	ai, _ := g.NodeIndex("a")
	bi, _ := g.NodeIndex("b")
	assert.Len(t, g.Nodes[ai].Neighbors, 1, "dangling connections are skipped, not fatal")
	assert.Len(t, g.Nodes[bi].Neighbors, 1)
}

func TestBuildGraphCurveCostRatio(t *testing.T) {
	nodes := []Node{
		{ID: "a", Position: orb.Point{0, 0}},
		{ID: "b", Position: orb.Point{100, 0}},
	}
	curve := Curve{Control1: orb.Point{0, 100}, Control2: orb.Point{100, 100}}

	g := BuildGraph(nodes, []Connection{
		{ID: "ab", From: "a", To: "b", Cost: 2, Bidirectional: true, Shape: curve},
	})

	arc := Cubic{orb.Point{0, 0}, curve.Control1, curve.Control2, orb.Point{100, 0}}.ArcLength(defaultArcLengthSegments)
	want := 2 * arc / 100

	ai, _ := g.NodeIndex("a")
	bi, _ := g.NodeIndex("b")
	assert.InDelta(t, want, g.Nodes[ai].Neighbors[0].Cost, 1e-9)
	assert.InDelta(t, want, g.Nodes[bi].Neighbors[0].Cost, 1e-9)
	assert.Greater(t, g.Nodes[ai].Neighbors[0].Cost, 2.0, "the arc is longer than the chord")
}

func TestBuildGraphCurveZeroChord(t *testing.T) {
	// Both endpoints at the same position: the chord guard divides by 1.
	nodes := []Node{
		{ID: "a", Position: orb.Point{50, 50}},
		{ID: "b", Position: orb.Point{50, 50}},
	}
	curve := Curve{Control1: orb.Point{0, 0}, Control2: orb.Point{100, 100}}

	g := BuildGraph(nodes, []Connection{
		{ID: "ab", From: "a", To: "b", Cost: 1, Shape: curve},
	})

	ai, _ := g.NodeIndex("a")
	require.Len(t, g.Nodes[ai].Neighbors, 1)
	arc := Cubic{orb.Point{50, 50}, curve.Control1, curve.Control2, orb.Point{50, 50}}.ArcLength(defaultArcLengthSegments)
	assert.InDelta(t, arc, g.Nodes[ai].Neighbors[0].Cost, 1e-9)
}

func TestBuildGraphStraightCostUnscaled(t *testing.T) {
	// Straight connections keep their stored cost no matter the geometry.
	nodes := []Node{
		{ID: "a", Position: orb.Point{0, 0}},
		{ID: "b", Position: orb.Point{1, 1}},
	}

	g := BuildGraph(nodes, []Connection{
		{ID: "ab", From: "a", To: "b", Cost: 7.5, Bidirectional: true, Shape: Straight{}},
	})

	ai, _ := g.NodeIndex("a")
	assert.Equal(t, 7.5, g.Nodes[ai].Neighbors[0].Cost)
}
