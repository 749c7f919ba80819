package pathfinding

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spatialFixture() ([]Node, []Connection) {
	nodes := []Node{
		{ID: "a", Position: orb.Point{0, 0}},
		{ID: "b", Position: orb.Point{100, 0}},
		{ID: "c", Position: orb.Point{50, 80}},
	}
	connections := []Connection{
		{ID: "ab-straight", From: "a", To: "b", Cost: 1, Bidirectional: true, Shape: Straight{}},
		{ID: "ab-curved", From: "a", To: "b", Cost: 1, Bidirectional: true,
			Shape: Curve{Control1: orb.Point{25, 90}, Control2: orb.Point{75, 90}}},
	}
	return nodes, connections
}

func TestSpatialIndexNearestNode(t *testing.T) {
	nodes, connections := spatialFixture()
	si := NewSpatialIndex(nodes, connections)

	nearest, ok := si.NearestNode(orb.Point{60, 70})
	require.True(t, ok)
	assert.Equal(t, "c", nearest.ID)

	nearest, ok = si.NearestNode(orb.Point{99, 1})
	require.True(t, ok)
	assert.Equal(t, "b", nearest.ID)
}

func TestSpatialIndexConnectionsIn(t *testing.T) {
	nodes, connections := spatialFixture()
	si := NewSpatialIndex(nodes, connections)

	t.Run("region over both endpoints hits both shapes", func(t *testing.T) {
		found := si.ConnectionsIn(orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{110, 10}})
		ids := connectionIDs(found)
		assert.Contains(t, ids, "ab-straight")
		assert.Contains(t, ids, "ab-curved")
	})

	t.Run("region under the bulge hits only the curve", func(t *testing.T) {
		// The curved variant arches up to y = 67.5; the straight one stays on y = 0.
		found := si.ConnectionsIn(orb.Bound{Min: orb.Point{40, 40}, Max: orb.Point{60, 60}})
		ids := connectionIDs(found)
		assert.Contains(t, ids, "ab-curved")
		assert.NotContains(t, ids, "ab-straight")
	})

	t.Run("region away from everything is empty", func(t *testing.T) {
		found := si.ConnectionsIn(orb.Bound{Min: orb.Point{300, 300}, Max: orb.Point{400, 400}})
		assert.Empty(t, found)
	})
}

func TestSpatialIndexSkipsDanglingConnections(t *testing.T) {
	nodes, connections := spatialFixture()
	connections = append(connections, Connection{ID: "dangling", From: "a", To: "missing", Cost: 1})

	si := NewSpatialIndex(nodes, connections)

	found := si.ConnectionsIn(orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{200, 200}})
	assert.NotContains(t, connectionIDs(found), "dangling")
}

func connectionIDs(conns []Connection) []string {
	ids := make([]string, 0, len(conns))
	for _, c := range conns {
		ids = append(ids, c.ID)
	}
	return ids
}
