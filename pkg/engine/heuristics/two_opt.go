package heuristics

// DefaultMaxIterations caps 2-opt rounds on pathological inputs. Hitting the
// cap is not an error, the best tour found so far is returned.
const DefaultMaxIterations = 1000

// twoOpt improves a tour by first-improvement segment reversals measured
// against the distance matrix. Each round scans index pairs (i, j) with
// 1 <= i < j < len and j-i > 1; the first reversal of [i, j) that shortens
// the tour is committed and the round restarts from the top. A round without
// an improving reversal terminates the search. Position 0 (the start poi)
// never moves. Returns the improved tour and the number of rounds executed,
// including the final non-improving one.
func twoOpt(matrix [][]float64, tour []int, maxIterations int) ([]int, int) {
	best := make([]int, len(tour))
	copy(best, tour)

	improved := true
	iteration := 0

	for improved && iteration < maxIterations {
		improved = false
		iteration++
		bestDistance := tourDistance(matrix, best)

	scan:
		for i := 1; i < len(best)-2; i++ {
			for j := i + 2; j < len(best); j++ {
				candidate := reverseSegment(best, i, j)
				if tourDistance(matrix, candidate) < bestDistance {
					best = candidate
					improved = true
					break scan
				}
			}
		}
	}

	return best, iteration
}

// reverseSegment returns a copy of the tour with the half-open segment
// [first, last) reversed.
func reverseSegment(tour []int, first, last int) []int {
	reversed := make([]int, len(tour))
	copy(reversed, tour[:first])
	for i := first; i < last; i++ {
		reversed[i] = tour[last-1-(i-first)]
	}
	copy(reversed[last:], tour[last:])
	return reversed
}
