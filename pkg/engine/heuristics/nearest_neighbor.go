package heuristics

import (
	"math"
)

// solveNearestNeighbor builds the initial tour greedily over the distance
// matrix: always move to the closest unvisited poi. Index 0 is the start poi
// and stays first. Ties and all-infinite remainders resolve to the lowest
// index, so the result is deterministic in the caller's input order.
// Unreachable pois (infinite matrix entries) are still visited, they are just
// the worst possible choice; the resulting tour then carries an infinite
// total distance.
func solveNearestNeighbor(matrix [][]float64) []int {
	k := len(matrix)
	tour := make([]int, k)
	visited := make([]bool, k)
	visited[0] = true

	for i := 1; i < k; i++ {
		minDist := math.Inf(1)
		minIdx := -1
		for j := 1; j < k; j++ {
			if !visited[j] && matrix[tour[i-1]][j] < minDist {
				minDist = matrix[tour[i-1]][j]
				minIdx = j
			}
		}
		if minIdx == -1 {
			// every remaining candidate is unreachable, fall back to input order
			for j := 1; j < k; j++ {
				if !visited[j] {
					minIdx = j
					break
				}
			}
		}
		tour[i] = minIdx
		visited[minIdx] = true
	}
	return tour
}
