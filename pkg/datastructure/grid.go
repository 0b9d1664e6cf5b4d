package datastructure

// GridIntersection is one node of the road grid. Identity is derived from the
// grid coordinates (ID = gridY*width + gridX), so intersections never carry
// externally assigned ids. Pixel coordinates are the cell center, used only
// for rendering and for segment weights.
type GridIntersection struct {
	ID       int32
	GridX    int32
	GridY    int32
	PixelX   float64
	PixelY   float64
	Passable bool
}

// RoadSegment is a directed edge between two 4-adjacent intersections. Every
// road is stored as two directed segments, one per direction.
type RoadSegment struct {
	FromID   int32
	ToID     int32
	Weight   float64
	Passable bool
}

// Neighbor is one outgoing traversable segment returned by a neighbor query.
type Neighbor struct {
	To     int32
	Weight float64
}

func NewNeighbor(to int32, weight float64) Neighbor {
	return Neighbor{
		To:     to,
		Weight: weight,
	}
}

// OptimizedRoute is the result of one optimization run. Immutable once
// produced; the renderer and the console summary only read from it.
type OptimizedRoute struct {
	// PoiPath is the visiting order, always starting with the start poi.
	PoiPath []string
	// FullPath is every intersection traversed, with no consecutive duplicates.
	FullPath []int32
	// TotalDistance is the sum of the shortest-path legs between consecutive pois.
	TotalDistance float64
	AlgorithmName string
	// Iterations is the number of refinement rounds executed. Zero for
	// construction-only strategies.
	Iterations int
}

func NewOptimizedRoute(poiPath []string, fullPath []int32, totalDistance float64,
	algorithmName string, iterations int) OptimizedRoute {
	return OptimizedRoute{
		PoiPath:       poiPath,
		FullPath:      fullPath,
		TotalDistance: totalDistance,
		AlgorithmName: algorithmName,
		Iterations:    iterations,
	}
}

// DeliveryPoint maps a poi id to a grid coordinate. Used as service input,
// the grid clamps out-of-bounds coordinates on insert.
type DeliveryPoint struct {
	ID    string
	GridX int32
	GridY int32
}

// BlockedRoadParam identifies one road by the grid coordinates of its two
// endpoints. Blocking applies to both directions.
type BlockedRoadParam struct {
	FromX int32
	FromY int32
	ToX   int32
	ToY   int32
}

// RouteOptimizationParam carries everything one optimization run needs. Each
// run builds its own grid from these fields, so concurrent requests never
// share mutable passability state.
type RouteOptimizationParam struct {
	GridWidth    int32
	GridHeight   int32
	CellSize     float64
	Pois         []DeliveryPoint
	BlockedRoads []BlockedRoadParam
	StartPoi     string
	Destinations []string
	Strategy     string
}
