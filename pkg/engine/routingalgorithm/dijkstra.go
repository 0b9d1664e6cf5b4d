package routingalgorithm

import (
	"math"

	"github.com/Alphinito/route-optimizer/pkg/datastructure"
	"github.com/Alphinito/route-optimizer/pkg/util"
)

type RouteAlgorithm struct {
	network RoadNetwork
}

func NewRouteAlgorithm(network RoadNetwork) *RouteAlgorithm {
	return &RouteAlgorithm{network: network}
}

// ShortestPathDistance runs label-setting dijkstra from one intersection and
// returns the shortest cumulative weight to another, following only passable
// segments and intersections. Stops as soon as the destination is settled.
// Returns +Inf when the destination is unreachable; an infinite distance is a
// valid outcome on blocked or disconnected grids, not an error.
func (rt *RouteAlgorithm) ShortestPathDistance(from, to int32) float64 {
	if from == to {
		return 0
	}

	pq := datastructure.NewMinHeap[int32]()
	pq.Insert(datastructure.PriorityQueueNode[int32]{Rank: 0, Item: from})

	df := make(map[int32]float64)
	df[from] = 0.0

	visited := make(map[int32]struct{})

	for pq.Size() > 0 {
		node, _ := pq.ExtractMin()
		if _, ok := visited[node.Item]; ok {
			continue
		}
		if node.Item == to {
			return node.Rank
		}
		visited[node.Item] = struct{}{}

		for _, neighbor := range rt.network.GetNeighbors(node.Item) {
			if _, ok := visited[neighbor.To]; ok {
				continue
			}

			newCost := node.Rank + neighbor.Weight
			cost, ok := df[neighbor.To]
			// relax edge
			if !ok {
				df[neighbor.To] = newCost
				pq.Insert(datastructure.PriorityQueueNode[int32]{Rank: newCost, Item: neighbor.To})
			} else if newCost < cost {
				df[neighbor.To] = newCost
				pq.DecreaseKey(datastructure.PriorityQueueNode[int32]{Rank: newCost, Item: neighbor.To})
			}
		}
	}

	return math.Inf(1)
}

// ShortestPath returns the intersection sequence of the shortest path from
// source to destination inclusive, plus its total weight. The search runs to
// queue exhaustion while tracking a previous pointer per settled node, then
// reconstructs by walking backwards from the destination and reversing.
// Returns (nil, +Inf) when the destination is unreachable; the caller decides
// whether that is an error.
func (rt *RouteAlgorithm) ShortestPath(from, to int32) ([]int32, float64) {
	pq := datastructure.NewMinHeap[int32]()
	pq.Insert(datastructure.PriorityQueueNode[int32]{Rank: 0, Item: from})

	df := make(map[int32]float64)
	df[from] = 0.0

	cameFrom := make(map[int32]int32)
	cameFrom[from] = -1

	visited := make(map[int32]struct{})

	for pq.Size() > 0 {
		node, _ := pq.ExtractMin()
		if _, ok := visited[node.Item]; ok {
			continue
		}
		visited[node.Item] = struct{}{}

		for _, neighbor := range rt.network.GetNeighbors(node.Item) {
			if _, ok := visited[neighbor.To]; ok {
				continue
			}

			newCost := node.Rank + neighbor.Weight
			cost, ok := df[neighbor.To]
			if !ok {
				df[neighbor.To] = newCost
				cameFrom[neighbor.To] = node.Item
				pq.Insert(datastructure.PriorityQueueNode[int32]{Rank: newCost, Item: neighbor.To})
			} else if newCost < cost {
				df[neighbor.To] = newCost
				cameFrom[neighbor.To] = node.Item
				pq.DecreaseKey(datastructure.PriorityQueueNode[int32]{Rank: newCost, Item: neighbor.To})
			}
		}
	}

	if _, ok := visited[to]; !ok {
		return nil, math.Inf(1)
	}

	path := make([]int32, 0)
	for at := to; at != -1; at = cameFrom[at] {
		path = append(path, at)
	}
	return util.ReverseG(path), df[to]
}
