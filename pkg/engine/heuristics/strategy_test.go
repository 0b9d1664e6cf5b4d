package heuristics

import (
	"errors"
	"testing"

	"github.com/Alphinito/route-optimizer/pkg/domain"
	"github.com/Alphinito/route-optimizer/pkg/engine/routingalgorithm"
	"github.com/Alphinito/route-optimizer/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptimizerOn3x3(t *testing.T) (*grid.RoadGrid, *RouteOptimizer) {
	t.Helper()
	g, err := grid.NewRoadGrid(3, 3, 50)
	require.NoError(t, err)
	g.AddPoi("center", 1, 1)
	g.AddPoi("a", 0, 0)
	g.AddPoi("b", 2, 2)

	rt := routingalgorithm.NewRouteAlgorithm(g)
	return g, NewRouteOptimizer(g, rt)
}

func TestOptimizeRouteConcreteScenario(t *testing.T) {
	g, optimizer := newOptimizerOn3x3(t)

	route, err := optimizer.OptimizeRoute("center", []string{"a", "b"}, "nearest_neighbor")
	require.NoError(t, err)

	// center->a and center->b both cost 100, a<->b costs 200
	assert.InDelta(t, 300.0, route.TotalDistance, 1e-9)
	assert.Equal(t, "center", route.PoiPath[0])
	assert.ElementsMatch(t, []string{"center", "a", "b"}, route.PoiPath)
	assert.Equal(t, "TSP Nearest Neighbor", route.AlgorithmName)
	assert.Equal(t, 0, route.Iterations)

	centerID, _ := g.PoiIntersection("center")
	assert.Equal(t, centerID, route.FullPath[0])

	refined, err := optimizer.OptimizeRoute("center", []string{"a", "b"}, "2opt")
	require.NoError(t, err)
	assert.LessOrEqual(t, refined.TotalDistance, route.TotalDistance)
	assert.Equal(t, "TSP + 2-Opt Local Search", refined.AlgorithmName)
	assert.GreaterOrEqual(t, refined.Iterations, 1)
}

func TestOptimizeRouteFullPathHasNoConsecutiveDuplicates(t *testing.T) {
	g, err := grid.NewRoadGrid(6, 5, 50)
	require.NoError(t, err)
	g.AddPoi("depot", 0, 0)
	g.AddPoi("d1", 5, 4)
	g.AddPoi("d2", 2, 3)
	g.AddPoi("d3", 4, 0)
	g.AddPoi("d4", 0, 4)

	optimizer := NewRouteOptimizer(g, routingalgorithm.NewRouteAlgorithm(g))
	route, err := optimizer.OptimizeRoute("depot", []string{"d1", "d2", "d3", "d4"}, "2opt")
	require.NoError(t, err)

	assert.Len(t, route.PoiPath, 5)
	for i := 0; i+1 < len(route.FullPath); i++ {
		assert.NotEqual(t, route.FullPath[i], route.FullPath[i+1])
	}
}

func TestOptimizeRouteSamePoiIntersection(t *testing.T) {
	// two pois on the same intersection: the shared leg collapses to one node
	g, err := grid.NewRoadGrid(3, 3, 50)
	require.NoError(t, err)
	g.AddPoi("depot", 0, 0)
	g.AddPoi("d1", 2, 0)
	g.AddPoi("d2", 2, 0)

	optimizer := NewRouteOptimizer(g, routingalgorithm.NewRouteAlgorithm(g))
	route, err := optimizer.OptimizeRoute("depot", []string{"d1", "d2"}, "nearest_neighbor")
	require.NoError(t, err)

	assert.InDelta(t, 100.0, route.TotalDistance, 1e-9)
	for i := 0; i+1 < len(route.FullPath); i++ {
		assert.NotEqual(t, route.FullPath[i], route.FullPath[i+1])
	}
}

func TestOptimizeRouteUnknownStrategy(t *testing.T) {
	_, optimizer := newOptimizerOn3x3(t)

	_, err := optimizer.OptimizeRoute("center", []string{"a"}, "simulated_annealing")
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrUnknownStrategy, domainErr.Code())
	assert.Contains(t, err.Error(), "2opt")
	assert.Contains(t, err.Error(), "nearest_neighbor")
}

func TestOptimizeRouteUnmappedPoi(t *testing.T) {
	_, optimizer := newOptimizerOn3x3(t)

	_, err := optimizer.OptimizeRoute("center", []string{"a", "ghost"}, "2opt")
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrUnmappedPoi, domainErr.Code())
}

func TestOptimizeRouteEmptyDestinations(t *testing.T) {
	_, optimizer := newOptimizerOn3x3(t)

	_, err := optimizer.OptimizeRoute("center", nil, "2opt")
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrEmptyDestinations, domainErr.Code())
}

func TestOptimizeRouteUnreachablePoi(t *testing.T) {
	g, optimizer := newOptimizerOn3x3(t)

	// seal off poi "a" at the (0,0) corner
	corner := g.IntersectionID(0, 0)
	right := g.IntersectionID(1, 0)
	down := g.IntersectionID(0, 1)
	g.BlockRoad(corner, right)
	g.BlockRoad(right, corner)
	g.BlockRoad(corner, down)
	g.BlockRoad(down, corner)

	_, err := optimizer.OptimizeRoute("center", []string{"a", "b"}, "nearest_neighbor")
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrUnreachable, domainErr.Code())
}

func TestRegisterCustomStrategy(t *testing.T) {
	_, optimizer := newOptimizerOn3x3(t)

	optimizer.Register("capped_2opt", func(grid RoadNetwork, routeAlgo RouteAlgorithm) Strategy {
		return NewTwoOptStrategy(grid, routeAlgo, 5)
	})

	route, err := optimizer.OptimizeRoute("center", []string{"a", "b"}, "capped_2opt")
	require.NoError(t, err)
	assert.LessOrEqual(t, route.Iterations, 5)
	assert.Equal(t, []string{"2opt", "capped_2opt", "nearest_neighbor"}, optimizer.StrategyNames())
}
