package heuristics

// RoadNetwork is the poi-mapping view of the grid a strategy needs.
type RoadNetwork interface {
	PoiIntersection(poiID string) (int32, bool)
}

// RouteAlgorithm is the shortest-path engine the strategies query, once per
// ordered poi pair for the distance matrix and once per tour leg for the full
// intersection path.
type RouteAlgorithm interface {
	ShortestPathDistance(from, to int32) float64
	ShortestPath(from, to int32) ([]int32, float64)
}
