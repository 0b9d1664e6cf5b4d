package heuristics

import (
	"github.com/Alphinito/route-optimizer/pkg/concurrent"
)

const matrixWorkers = 10

// buildDistanceMatrix computes every pairwise shortest distance among the
// given poi intersections, O(k^2-k) dijkstra queries fanned out over the
// worker pool. The queries only read grid state, which must not be mutated
// while the matrix is in flight. The matrix is a fixed snapshot: if blocking
// state changes afterwards it has to be recomputed, there is no incremental
// update.
func buildDistanceMatrix(intersections []int32, routeAlgo RouteAlgorithm) [][]float64 {
	k := len(intersections)

	workers := concurrent.NewWorkerPool[concurrent.MatrixEntryParam, concurrent.MatrixEntryResult](
		matrixWorkers, k*k)

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			workers.AddJob(concurrent.NewMatrixEntryParam(i, j, intersections[i], intersections[j], routeAlgo))
		}
	}
	workers.Close()

	workers.Start(computeMatrixEntry)
	workers.Wait()

	matrix := make([][]float64, k)
	for i := 0; i < k; i++ {
		matrix[i] = make([]float64, k)
	}
	for entry := range workers.CollectResults() {
		matrix[entry.FromIndex][entry.ToIndex] = entry.Dist
	}
	return matrix
}

func computeMatrixEntry(job concurrent.MatrixEntryParam) concurrent.MatrixEntryResult {
	return concurrent.MatrixEntryResult{
		FromIndex: job.FromIndex,
		ToIndex:   job.ToIndex,
		Dist:      job.RouteAlgo.ShortestPathDistance(job.FromIntersection, job.ToIntersection),
	}
}

// tourDistance sums the matrix entries along a tour of matrix indices.
func tourDistance(matrix [][]float64, tour []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(tour); i++ {
		total += matrix[tour[i]][tour[i+1]]
	}
	return total
}
