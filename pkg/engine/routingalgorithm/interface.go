package routingalgorithm

import "github.com/Alphinito/route-optimizer/pkg/datastructure"

type RoadNetwork interface {
	GetNeighbors(intersectionID int32) []datastructure.Neighbor
	NumIntersections() int
}
