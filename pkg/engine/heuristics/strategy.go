package heuristics

import (
	"sort"
	"strings"

	"github.com/Alphinito/route-optimizer/pkg/datastructure"
	"github.com/Alphinito/route-optimizer/pkg/domain"
)

// Strategy is one route-optimization algorithm. Every strategy returns a
// complete OptimizedRoute or an error, never a partial result.
type Strategy interface {
	Optimize(startPoi string, destinationPois []string) (datastructure.OptimizedRoute, error)
}

// StrategyFactory builds a strategy bound to one grid snapshot and
// shortest-path engine.
type StrategyFactory func(grid RoadNetwork, routeAlgo RouteAlgorithm) Strategy

// tourSolver is the shared machinery of every strategy: poi resolution,
// distance matrix, and expansion of a poi order into the full
// intersection-level path.
type tourSolver struct {
	grid      RoadNetwork
	routeAlgo RouteAlgorithm
}

// resolvePois validates the inputs and maps every poi to its intersection.
// Index 0 is the start poi, destinations keep their input order.
func (s *tourSolver) resolvePois(startPoi string, destinationPois []string) ([]string, []int32, error) {
	if len(destinationPois) == 0 {
		return nil, nil, domain.WrapErrorf(nil, domain.ErrEmptyDestinations,
			"optimization from %q needs at least one destination", startPoi)
	}

	pois := make([]string, 0, len(destinationPois)+1)
	pois = append(pois, startPoi)
	pois = append(pois, destinationPois...)

	intersections := make([]int32, len(pois))
	for i, poi := range pois {
		id, ok := s.grid.PoiIntersection(poi)
		if !ok {
			return nil, nil, domain.WrapErrorf(nil, domain.ErrUnmappedPoi,
				"poi %q is not mapped to any intersection", poi)
		}
		intersections[i] = id
	}
	return pois, intersections, nil
}

// stitchFullPath expands a tour of matrix indices into the complete
// intersection sequence. The first leg is appended whole; every later leg
// drops its first intersection, which duplicates the previous leg's last.
func (s *tourSolver) stitchFullPath(tour []int, intersections []int32, pois []string) ([]int32, error) {
	fullPath := make([]int32, 0)
	for i := 0; i+1 < len(tour); i++ {
		from := intersections[tour[i]]
		to := intersections[tour[i+1]]

		leg, _ := s.routeAlgo.ShortestPath(from, to)
		if len(leg) == 0 {
			return nil, domain.WrapErrorf(nil, domain.ErrUnreachable,
				"no path between poi %q and poi %q", pois[tour[i]], pois[tour[i+1]])
		}

		if i == 0 {
			fullPath = append(fullPath, leg...)
		} else {
			fullPath = append(fullPath, leg[1:]...)
		}
	}
	return fullPath, nil
}

func tourToPoiPath(tour []int, pois []string) []string {
	poiPath := make([]string, len(tour))
	for i, idx := range tour {
		poiPath[i] = pois[idx]
	}
	return poiPath
}

// NearestNeighborStrategy is the greedy construction heuristic on its own.
type NearestNeighborStrategy struct {
	tourSolver
}

func NewNearestNeighborStrategy(grid RoadNetwork, routeAlgo RouteAlgorithm) *NearestNeighborStrategy {
	return &NearestNeighborStrategy{tourSolver{grid: grid, routeAlgo: routeAlgo}}
}

func (s *NearestNeighborStrategy) Optimize(startPoi string, destinationPois []string) (datastructure.OptimizedRoute, error) {
	pois, intersections, err := s.resolvePois(startPoi, destinationPois)
	if err != nil {
		return datastructure.OptimizedRoute{}, err
	}

	matrix := buildDistanceMatrix(intersections, s.routeAlgo)
	tour := solveNearestNeighbor(matrix)

	fullPath, err := s.stitchFullPath(tour, intersections, pois)
	if err != nil {
		return datastructure.OptimizedRoute{}, err
	}

	return datastructure.NewOptimizedRoute(tourToPoiPath(tour, pois), fullPath,
		tourDistance(matrix, tour), "TSP Nearest Neighbor", 0), nil
}

// TwoOptStrategy refines a nearest-neighbor tour with 2-opt local search.
type TwoOptStrategy struct {
	tourSolver
	maxIterations int
}

func NewTwoOptStrategy(grid RoadNetwork, routeAlgo RouteAlgorithm, maxIterations int) *TwoOptStrategy {
	return &TwoOptStrategy{
		tourSolver:    tourSolver{grid: grid, routeAlgo: routeAlgo},
		maxIterations: maxIterations,
	}
}

func (s *TwoOptStrategy) Optimize(startPoi string, destinationPois []string) (datastructure.OptimizedRoute, error) {
	pois, intersections, err := s.resolvePois(startPoi, destinationPois)
	if err != nil {
		return datastructure.OptimizedRoute{}, err
	}

	matrix := buildDistanceMatrix(intersections, s.routeAlgo)
	tour := solveNearestNeighbor(matrix)
	tour, iterations := twoOpt(matrix, tour, s.maxIterations)

	fullPath, err := s.stitchFullPath(tour, intersections, pois)
	if err != nil {
		return datastructure.OptimizedRoute{}, err
	}

	return datastructure.NewOptimizedRoute(tourToPoiPath(tour, pois), fullPath,
		tourDistance(matrix, tour), "TSP + 2-Opt Local Search", iterations), nil
}

// RouteOptimizer dispatches optimization runs to a registered strategy. The
// registry is an explicit per-optimizer value, there is no process-wide
// strategy state.
type RouteOptimizer struct {
	grid       RoadNetwork
	routeAlgo  RouteAlgorithm
	strategies map[string]StrategyFactory
}

func NewRouteOptimizer(grid RoadNetwork, routeAlgo RouteAlgorithm) *RouteOptimizer {
	o := &RouteOptimizer{
		grid:       grid,
		routeAlgo:  routeAlgo,
		strategies: make(map[string]StrategyFactory),
	}
	o.Register("nearest_neighbor", func(grid RoadNetwork, routeAlgo RouteAlgorithm) Strategy {
		return NewNearestNeighborStrategy(grid, routeAlgo)
	})
	o.Register("2opt", func(grid RoadNetwork, routeAlgo RouteAlgorithm) Strategy {
		return NewTwoOptStrategy(grid, routeAlgo, DefaultMaxIterations)
	})
	return o
}

// Register adds or replaces a strategy under the given name.
func (o *RouteOptimizer) Register(name string, factory StrategyFactory) {
	o.strategies[name] = factory
}

func (o *RouteOptimizer) StrategyNames() []string {
	names := make([]string, 0, len(o.strategies))
	for name := range o.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (o *RouteOptimizer) OptimizeRoute(startPoi string, destinationPois []string,
	strategyName string) (datastructure.OptimizedRoute, error) {
	factory, ok := o.strategies[strategyName]
	if !ok {
		return datastructure.OptimizedRoute{}, domain.WrapErrorf(nil, domain.ErrUnknownStrategy,
			"unknown strategy %q, available: %s", strategyName, strings.Join(o.StrategyNames(), ", "))
	}
	return factory(o.grid, o.routeAlgo).Optimize(startPoi, destinationPois)
}
