package grid

import (
	"fmt"
	"math"

	"github.com/Alphinito/route-optimizer/pkg/datastructure"
	"github.com/Alphinito/route-optimizer/pkg/domain"
)

// RoadGrid is the road network: width*height intersections on a uniform grid,
// two directed road segments per 4-adjacency, and a poi-to-intersection map.
// All blocking mutations are in-place on shared state, so callers must not
// mutate the grid while an optimization run is reading it.
type RoadGrid struct {
	width    int32
	height   int32
	cellSize float64

	intersections []datastructure.GridIntersection
	segments      []datastructure.RoadSegment
	// outSegments[i] holds the segment ids leaving intersection i.
	outSegments [][]int32

	poiMap map[string]int32
}

// NewRoadGrid builds the base grid. Segment weights are the euclidean
// distance between the endpoint pixel centers, which for 4-adjacency equals
// cellSize.
func NewRoadGrid(width, height int32, cellSize float64) (*RoadGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, domain.WrapErrorf(nil, domain.ErrInvalidDimension,
			"cannot build %dx%d grid", width, height)
	}

	g := &RoadGrid{
		width:         width,
		height:        height,
		cellSize:      cellSize,
		intersections: make([]datastructure.GridIntersection, width*height),
		outSegments:   make([][]int32, width*height),
		poiMap:        make(map[string]int32),
	}

	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			id := g.IntersectionID(x, y)
			g.intersections[id] = datastructure.GridIntersection{
				ID:       id,
				GridX:    x,
				GridY:    y,
				PixelX:   float64(x)*cellSize + cellSize/2,
				PixelY:   float64(y)*cellSize + cellSize/2,
				Passable: true,
			}
		}
	}

	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			if x < width-1 {
				g.addRoad(g.IntersectionID(x, y), g.IntersectionID(x+1, y))
			}
			if y < height-1 {
				g.addRoad(g.IntersectionID(x, y), g.IntersectionID(x, y+1))
			}
		}
	}

	return g, nil
}

// addRoad inserts the two directed segments of one bidirectional road.
func (g *RoadGrid) addRoad(fromID, toID int32) {
	weight := g.euclideanDistance(fromID, toID)
	for _, pair := range [][2]int32{{fromID, toID}, {toID, fromID}} {
		segmentID := int32(len(g.segments))
		g.segments = append(g.segments, datastructure.RoadSegment{
			FromID:   pair[0],
			ToID:     pair[1],
			Weight:   weight,
			Passable: true,
		})
		g.outSegments[pair[0]] = append(g.outSegments[pair[0]], segmentID)
	}
}

func (g *RoadGrid) euclideanDistance(fromID, toID int32) float64 {
	from := g.intersections[fromID]
	to := g.intersections[toID]
	return math.Sqrt((from.PixelX-to.PixelX)*(from.PixelX-to.PixelX) +
		(from.PixelY-to.PixelY)*(from.PixelY-to.PixelY))
}

func (g *RoadGrid) IntersectionID(x, y int32) int32 {
	return y*g.width + x
}

// InBounds reports whether (x, y) falls inside the grid. Callers resolving
// external "grid_x_y" references must check this before IntersectionID,
// because the row-major id formula aliases out-of-range coordinates onto
// real intersections (x == width wraps onto the next row).
func (g *RoadGrid) InBounds(x, y int32) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *RoadGrid) Intersection(id int32) datastructure.GridIntersection {
	return g.intersections[id]
}

func (g *RoadGrid) NumIntersections() int {
	return len(g.intersections)
}

func (g *RoadGrid) Width() int32 {
	return g.width
}

func (g *RoadGrid) Height() int32 {
	return g.height
}

func (g *RoadGrid) CellSize() float64 {
	return g.cellSize
}

// Segments returns the directed segment slice. Read-only use (rendering).
func (g *RoadGrid) Segments() []datastructure.RoadSegment {
	return g.segments
}

// PixelBounds returns the grid extent in pixels (minX, minY, maxX, maxY).
func (g *RoadGrid) PixelBounds() (float64, float64, float64, float64) {
	return 0, 0, float64(g.width) * g.cellSize, float64(g.height) * g.cellSize
}

// AddPoi maps a poi onto the intersection at (gridX, gridY) and returns the
// intersection id. Out-of-bounds coordinates are clamped into the grid rather
// than rejected; a second call for the same poi overwrites the mapping.
func (g *RoadGrid) AddPoi(poiID string, gridX, gridY int32) int32 {
	gridX = max(0, min(gridX, g.width-1))
	gridY = max(0, min(gridY, g.height-1))

	intersectionID := g.IntersectionID(gridX, gridY)
	g.poiMap[poiID] = intersectionID
	return intersectionID
}

// PoiIntersection returns the intersection a poi is mapped to.
func (g *RoadGrid) PoiIntersection(poiID string) (int32, bool) {
	id, ok := g.poiMap[poiID]
	return id, ok
}

// GetNeighbors returns every outgoing segment whose segment AND destination
// intersection are passable. Filtering the destination here is what keeps
// blocked intersections out of every traversal.
func (g *RoadGrid) GetNeighbors(intersectionID int32) []datastructure.Neighbor {
	neighbors := make([]datastructure.Neighbor, 0, len(g.outSegments[intersectionID]))
	for _, segmentID := range g.outSegments[intersectionID] {
		segment := g.segments[segmentID]
		if !segment.Passable || !g.intersections[segment.ToID].Passable {
			continue
		}
		neighbors = append(neighbors, datastructure.NewNeighbor(segment.ToID, segment.Weight))
	}
	return neighbors
}

// BlockRoad blocks exactly one directed segment. Blocking a road in both
// directions takes two calls. Unknown segments are a no-op.
func (g *RoadGrid) BlockRoad(fromID, toID int32) {
	g.setRoadPassable(fromID, toID, false)
}

func (g *RoadGrid) UnblockRoad(fromID, toID int32) {
	g.setRoadPassable(fromID, toID, true)
}

func (g *RoadGrid) setRoadPassable(fromID, toID int32, passable bool) {
	if fromID < 0 || fromID >= int32(len(g.outSegments)) {
		return
	}
	for _, segmentID := range g.outSegments[fromID] {
		if g.segments[segmentID].ToID == toID {
			g.segments[segmentID].Passable = passable
			return
		}
	}
}

func (g *RoadGrid) BlockIntersection(id int32) {
	g.setIntersectionPassable(id, false)
}

func (g *RoadGrid) UnblockIntersection(id int32) {
	g.setIntersectionPassable(id, true)
}

func (g *RoadGrid) setIntersectionPassable(id int32, passable bool) {
	if id < 0 || id >= int32(len(g.intersections)) {
		return
	}
	g.intersections[id].Passable = passable
}

// FormatIntersectionRef renders an intersection id as the "grid_<x>_<y>"
// reference form used by config files and api responses.
func FormatIntersectionRef(id, width int32) string {
	return fmt.Sprintf("grid_%d_%d", id%width, id/width)
}

// ParseIntersectionRef parses the "grid_<x>_<y>" intersection references used
// by config files (grid.blocked_roads entries).
func ParseIntersectionRef(ref string) (int32, int32, error) {
	var x, y int32
	if _, err := fmt.Sscanf(ref, "grid_%d_%d", &x, &y); err != nil {
		return 0, 0, domain.WrapErrorf(err, domain.ErrBadParamInput,
			"invalid intersection reference %q", ref)
	}
	return x, y, nil
}
