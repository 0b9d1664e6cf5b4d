package routingalgorithm

import (
	"math"
	"testing"

	"github.com/Alphinito/route-optimizer/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, width, height int32) *grid.RoadGrid {
	t.Helper()
	g, err := grid.NewRoadGrid(width, height, 50)
	require.NoError(t, err)
	return g
}

func TestShortestPathDistanceOnOpenGrid(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	rt := NewRouteAlgorithm(g)

	center := g.IntersectionID(1, 1)
	a := g.IntersectionID(0, 0)
	b := g.IntersectionID(2, 2)

	// manhattan distance through the grid, two 50px segments each
	assert.InDelta(t, 100.0, rt.ShortestPathDistance(center, a), 1e-9)
	assert.InDelta(t, 100.0, rt.ShortestPathDistance(center, b), 1e-9)
	assert.InDelta(t, 200.0, rt.ShortestPathDistance(a, b), 1e-9)

	assert.Equal(t, 0.0, rt.ShortestPathDistance(center, center))
}

func TestShortestPathDistanceSymmetry(t *testing.T) {
	g := newTestGrid(t, 5, 4)
	rt := NewRouteAlgorithm(g)

	pairs := [][2]int32{
		{g.IntersectionID(0, 0), g.IntersectionID(4, 3)},
		{g.IntersectionID(2, 1), g.IntersectionID(0, 3)},
		{g.IntersectionID(1, 0), g.IntersectionID(3, 2)},
	}
	for _, p := range pairs {
		assert.InDelta(t, rt.ShortestPathDistance(p[0], p[1]), rt.ShortestPathDistance(p[1], p[0]), 1e-9)
	}
}

func TestShortestPathEndpointsAndAdjacency(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	rt := NewRouteAlgorithm(g)

	from := g.IntersectionID(0, 0)
	to := g.IntersectionID(3, 2)

	path, dist := rt.ShortestPath(from, to)
	require.NotEmpty(t, path)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	assert.InDelta(t, 250.0, dist, 1e-9)

	// every consecutive pair must be a passable segment
	for i := 0; i+1 < len(path); i++ {
		found := false
		for _, n := range g.GetNeighbors(path[i]) {
			if n.To == path[i+1] {
				found = true
			}
		}
		assert.True(t, found, "path step %d -> %d is not a passable segment", path[i], path[i+1])
	}

	// shortest path on a uniform grid has manhattan length, no detours
	assert.Len(t, path, 6)
}

func TestShortestPathRespectsBlockedRoads(t *testing.T) {
	// 2x2 grid, block both directions of one road: the path around still exists
	g := newTestGrid(t, 2, 2)
	rt := NewRouteAlgorithm(g)

	from := g.IntersectionID(0, 0)
	to := g.IntersectionID(1, 0)
	g.BlockRoad(from, to)
	g.BlockRoad(to, from)

	path, dist := rt.ShortestPath(from, to)
	assert.Equal(t, []int32{from, g.IntersectionID(0, 1), g.IntersectionID(1, 1), to}, path)
	assert.InDelta(t, 150.0, dist, 1e-9)
}

func TestUnreachableIntersectionHasInfiniteDistance(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	rt := NewRouteAlgorithm(g)

	// seal off the corner by blocking all incident roads in both directions
	corner := g.IntersectionID(0, 0)
	right := g.IntersectionID(1, 0)
	down := g.IntersectionID(0, 1)
	g.BlockRoad(corner, right)
	g.BlockRoad(right, corner)
	g.BlockRoad(corner, down)
	g.BlockRoad(down, corner)

	assert.True(t, math.IsInf(rt.ShortestPathDistance(g.IntersectionID(2, 2), corner), 1))

	path, dist := rt.ShortestPath(g.IntersectionID(2, 2), corner)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(dist, 1))
}

func TestBlockedIntersectionIsUnreachable(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	rt := NewRouteAlgorithm(g)

	center := g.IntersectionID(1, 1)
	g.BlockIntersection(center)

	assert.True(t, math.IsInf(rt.ShortestPathDistance(g.IntersectionID(0, 0), center), 1))
	// traffic still routes around it
	assert.InDelta(t, 200.0, rt.ShortestPathDistance(g.IntersectionID(0, 1), g.IntersectionID(2, 1)), 1e-9)
}
