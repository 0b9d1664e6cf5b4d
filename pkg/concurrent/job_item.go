package concurrent

// RouteAlgorithm is the subset of the shortest-path engine a matrix job needs.
type RouteAlgorithm interface {
	ShortestPathDistance(from, to int32) float64
}

// MatrixEntryParam is one ordered poi pair of a distance-matrix computation.
// Indices address the poi slice of the run, intersections are the grid nodes
// the pois are mapped to.
type MatrixEntryParam struct {
	FromIndex        int
	ToIndex          int
	FromIntersection int32
	ToIntersection   int32
	RouteAlgo        RouteAlgorithm
}

func NewMatrixEntryParam(fromIndex, toIndex int, fromIntersection, toIntersection int32,
	routeAlgo RouteAlgorithm) MatrixEntryParam {
	return MatrixEntryParam{
		FromIndex:        fromIndex,
		ToIndex:          toIndex,
		FromIntersection: fromIntersection,
		ToIntersection:   toIntersection,
		RouteAlgo:        routeAlgo,
	}
}

type MatrixEntryResult struct {
	FromIndex int
	ToIndex   int
	Dist      float64
}

type JobI interface {
	MatrixEntryParam
}

type JobFunc[T JobI, G any] func(job T) G
