package service

import (
	"context"

	"github.com/Alphinito/route-optimizer/pkg/datastructure"
	"github.com/Alphinito/route-optimizer/pkg/engine/heuristics"
	"github.com/Alphinito/route-optimizer/pkg/engine/routingalgorithm"
	"github.com/Alphinito/route-optimizer/pkg/grid"
)

const defaultStrategy = "2opt"

// NavigationService runs delivery-route optimizations. Every request builds
// its own grid from the request parameters, so concurrent requests never
// share passability state and no locking is needed around optimization runs.
type NavigationService struct{}

func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

func (svc *NavigationService) OptimizeDeliveryRoute(ctx context.Context,
	param datastructure.RouteOptimizationParam) (datastructure.OptimizedRoute, error) {
	roadGrid, err := grid.NewRoadGrid(param.GridWidth, param.GridHeight, param.CellSize)
	if err != nil {
		return datastructure.OptimizedRoute{}, err
	}

	for _, poi := range param.Pois {
		roadGrid.AddPoi(poi.ID, poi.GridX, poi.GridY)
	}

	// road blocks apply to both directions; references outside the grid are
	// ignored, they cannot name a road
	for _, blocked := range param.BlockedRoads {
		if !roadGrid.InBounds(blocked.FromX, blocked.FromY) || !roadGrid.InBounds(blocked.ToX, blocked.ToY) {
			continue
		}
		from := roadGrid.IntersectionID(blocked.FromX, blocked.FromY)
		to := roadGrid.IntersectionID(blocked.ToX, blocked.ToY)
		roadGrid.BlockRoad(from, to)
		roadGrid.BlockRoad(to, from)
	}

	strategy := param.Strategy
	if strategy == "" {
		strategy = defaultStrategy
	}

	routeAlgo := routingalgorithm.NewRouteAlgorithm(roadGrid)
	optimizer := heuristics.NewRouteOptimizer(roadGrid, routeAlgo)
	return optimizer.OptimizeRoute(param.StartPoi, param.Destinations, strategy)
}
