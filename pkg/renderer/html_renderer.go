package renderer

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/Alphinito/route-optimizer/pkg/config"
	"github.com/Alphinito/route-optimizer/pkg/datastructure"
	"github.com/Alphinito/route-optimizer/pkg/grid"
	"github.com/Alphinito/route-optimizer/pkg/util"
)

// HTMLRenderer draws the grid, the optimized route and a stats panel into a
// self-contained HTML file with an inline SVG map. Pure consumer of
// OptimizedRoute; it never feeds anything back into the optimizer.
type HTMLRenderer struct {
	roadGrid *grid.RoadGrid
	cfg      *config.Config
}

func NewHTMLRenderer(roadGrid *grid.RoadGrid, cfg *config.Config) *HTMLRenderer {
	return &HTMLRenderer{roadGrid: roadGrid, cfg: cfg}
}

type roadLine struct {
	X1, Y1, X2, Y2 float64
	Blocked        bool
}

type poiMarker struct {
	X, Y     float64
	Name     string
	Order    int
	IsCenter bool
}

type templateData struct {
	ViewBox           string
	Roads             []roadLine
	RoutePoints       string
	Pois              []poiMarker
	TotalDistance     float64
	IntersectionCount int
	DeliveryCount     int
	PoiSequence       string
	AlgorithmName     string
	Iterations        int
}

// RenderRoute writes the visualization for one optimized route to outputFile.
func (r *HTMLRenderer) RenderRoute(route datastructure.OptimizedRoute, outputFile string) error {
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("cannot create output file %q: %w", outputFile, err)
	}
	defer f.Close()

	return routeTemplate.Execute(f, r.buildTemplateData(route))
}

func (r *HTMLRenderer) buildTemplateData(route datastructure.OptimizedRoute) templateData {
	minX, minY, maxX, maxY := r.roadGrid.PixelBounds()

	return templateData{
		ViewBox:           fmt.Sprintf("%g %g %g %g", minX, minY, maxX, maxY),
		Roads:             r.buildRoads(),
		RoutePoints:       r.buildRoutePoints(route),
		Pois:              r.buildPoiMarkers(route),
		TotalDistance:     util.RoundFloat(route.TotalDistance, 2),
		IntersectionCount: len(route.FullPath),
		DeliveryCount:     len(route.PoiPath) - 1,
		PoiSequence:       strings.Join(route.PoiPath, " → "),
		AlgorithmName:     route.AlgorithmName,
		Iterations:        route.Iterations,
	}
}

// buildRoads collapses the two directed segments of each road into one line.
// A road renders as blocked when either direction is impassable.
func (r *HTMLRenderer) buildRoads() []roadLine {
	passable := make(map[[2]int32]bool)
	for _, segment := range r.roadGrid.Segments() {
		key := [2]int32{min(segment.FromID, segment.ToID), max(segment.FromID, segment.ToID)}
		open, seen := passable[key]
		if !seen {
			open = true
		}
		passable[key] = open && segment.Passable
	}

	roads := make([]roadLine, 0, len(passable))
	for _, segment := range r.roadGrid.Segments() {
		if segment.FromID >= segment.ToID {
			continue
		}
		from := r.roadGrid.Intersection(segment.FromID)
		to := r.roadGrid.Intersection(segment.ToID)
		roads = append(roads, roadLine{
			X1: from.PixelX, Y1: from.PixelY,
			X2: to.PixelX, Y2: to.PixelY,
			Blocked: !passable[[2]int32{segment.FromID, segment.ToID}],
		})
	}
	return roads
}

func (r *HTMLRenderer) buildRoutePoints(route datastructure.OptimizedRoute) string {
	points := make([]string, 0, len(route.FullPath))
	for _, id := range route.FullPath {
		inter := r.roadGrid.Intersection(id)
		points = append(points, fmt.Sprintf("%g,%g", inter.PixelX, inter.PixelY))
	}
	return strings.Join(points, " ")
}

func (r *HTMLRenderer) buildPoiMarkers(route datastructure.OptimizedRoute) []poiMarker {
	markers := make([]poiMarker, 0, len(route.PoiPath))
	for order, poiID := range route.PoiPath {
		intersectionID, ok := r.roadGrid.PoiIntersection(poiID)
		if !ok {
			continue
		}
		inter := r.roadGrid.Intersection(intersectionID)

		name := poiID
		isCenter := order == 0
		if node, found := r.cfg.NodeByID(poiID); found {
			if node.Name != "" {
				name = node.Name
			}
			isCenter = isCenter || node.Type == "distribution_center"
		}

		markers = append(markers, poiMarker{
			X:        inter.PixelX,
			Y:        inter.PixelY,
			Name:     name,
			Order:    order,
			IsCenter: isCenter,
		})
	}
	return markers
}

var routeTemplate = template.Must(template.New("route").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Optimized Delivery Route</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }
        .container {
            background: white;
            border-radius: 12px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            padding: 30px;
            max-width: 1400px;
            margin: 0 auto;
        }
        h1 { color: #333; margin-bottom: 20px; text-align: center; }
        .info-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 15px;
            margin-bottom: 30px;
        }
        .info-card {
            background: #f8f9fa;
            border-left: 4px solid #667eea;
            padding: 15px;
            border-radius: 4px;
        }
        .info-card h3 { color: #667eea; margin-bottom: 10px; font-size: 1.1em; }
        .info-card p { margin: 5px 0; color: #555; font-size: 14px; }
        .route-sequence { color: #333; font-size: 13px; word-break: break-word; font-weight: bold; }
        .map-container {
            width: 100%;
            margin-bottom: 20px;
            border: 2px solid #ddd;
            border-radius: 8px;
            overflow: hidden;
            background: #f5f7fa;
        }
        .map { display: block; width: 100%; }
        .legend { display: flex; gap: 20px; flex-wrap: wrap; }
        .legend-item { display: flex; align-items: center; gap: 8px; font-size: 14px; color: #555; }
        .legend-color { width: 18px; height: 18px; border-radius: 3px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Optimized Delivery Route</h1>
        <div class="info-grid">
            <div class="info-card">
                <h3>Statistics</h3>
                <p><strong>Total distance:</strong> {{.TotalDistance}} px</p>
                <p><strong>Intersections:</strong> {{.IntersectionCount}}</p>
                <p><strong>Deliveries:</strong> {{.DeliveryCount}}</p>
            </div>
            <div class="info-card">
                <h3>Route</h3>
                <p class="route-sequence">{{.PoiSequence}}</p>
            </div>
            <div class="info-card">
                <h3>Algorithm</h3>
                <p><strong>Strategy:</strong> {{.AlgorithmName}}</p>
                {{if .Iterations}}<p><strong>Iterations:</strong> {{.Iterations}}</p>{{end}}
            </div>
        </div>
        <div class="map-container">
            <svg class="map" viewBox="{{.ViewBox}}">
                <defs>
                    <marker id="arrow" viewBox="0 0 10 10" refX="5" refY="5"
                        markerWidth="5" markerHeight="5" orient="auto-start-reverse">
                        <path d="M 0 0 L 10 5 L 0 10 z" fill="#2980b9"/>
                    </marker>
                </defs>
                {{range .Roads}}<line x1="{{.X1}}" y1="{{.Y1}}" x2="{{.X2}}" y2="{{.Y2}}"
                    {{if .Blocked}}stroke="#e74c3c" stroke-dasharray="6,4"{{else}}stroke="#ddd"{{end}} stroke-width="3"/>
                {{end}}
                <polyline points="{{.RoutePoints}}" fill="none" stroke="#3498db" stroke-width="5"
                    stroke-linecap="round" stroke-linejoin="round" opacity="0.85"
                    marker-mid="url(#arrow)"/>
                {{range .Pois}}<g>
                    <circle cx="{{.X}}" cy="{{.Y}}" r="11" fill="{{if .IsCenter}}#e74c3c{{else}}#27ae60{{end}}" stroke="white" stroke-width="2"/>
                    <text x="{{.X}}" y="{{.Y}}" text-anchor="middle" dominant-baseline="central"
                        fill="white" font-size="10" font-weight="bold">{{.Order}}</text>
                    <text x="{{.X}}" y="{{.Y}}" dy="-16" text-anchor="middle"
                        fill="#333" font-size="11" font-weight="bold">{{.Name}}</text>
                </g>
                {{end}}
            </svg>
        </div>
        <div class="legend">
            <div class="legend-item"><div class="legend-color" style="background: #ddd;"></div><span>Open roads</span></div>
            <div class="legend-item"><div class="legend-color" style="background: #e74c3c;"></div><span>Blocked roads / distribution center</span></div>
            <div class="legend-item"><div class="legend-color" style="background: #3498db;"></div><span>Optimized route</span></div>
            <div class="legend-item"><div class="legend-color" style="background: #27ae60;"></div><span>Delivery addresses</span></div>
        </div>
    </div>
</body>
</html>
`))
