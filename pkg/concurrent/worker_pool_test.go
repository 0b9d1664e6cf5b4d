package concurrent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type constantDistance struct {
	dist float64
}

func (c constantDistance) ShortestPathDistance(from, to int32) float64 {
	return c.dist
}

func TestWorkerPoolCollectsEveryResult(t *testing.T) {
	algo := constantDistance{dist: 42}

	workers := NewWorkerPool[MatrixEntryParam, MatrixEntryResult](4, 100)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			if i == j {
				continue
			}
			workers.AddJob(NewMatrixEntryParam(i, j, int32(i), int32(j), algo))
		}
	}
	workers.Close()

	workers.Start(func(job MatrixEntryParam) MatrixEntryResult {
		return MatrixEntryResult{
			FromIndex: job.FromIndex,
			ToIndex:   job.ToIndex,
			Dist:      job.RouteAlgo.ShortestPathDistance(job.FromIntersection, job.ToIntersection),
		}
	})
	workers.Wait()

	seen := make(map[[2]int]bool)
	for res := range workers.CollectResults() {
		assert.Equal(t, 42.0, res.Dist)
		seen[[2]int{res.FromIndex, res.ToIndex}] = true
	}
	assert.Len(t, seen, 90)
}
