package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alphinito/route-optimizer/pkg/config"
	"github.com/Alphinito/route-optimizer/pkg/engine/heuristics"
	"github.com/Alphinito/route-optimizer/pkg/engine/routingalgorithm"
	"github.com/Alphinito/route-optimizer/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRouteWritesCompleteDocument(t *testing.T) {
	g, err := grid.NewRoadGrid(3, 3, 50)
	require.NoError(t, err)
	g.AddPoi("distribution_center", 1, 1)
	g.AddPoi("house_1", 0, 0)
	g.AddPoi("house_2", 2, 2)
	g.BlockRoad(g.IntersectionID(0, 2), g.IntersectionID(1, 2))
	g.BlockRoad(g.IntersectionID(1, 2), g.IntersectionID(0, 2))

	optimizer := heuristics.NewRouteOptimizer(g, routingalgorithm.NewRouteAlgorithm(g))
	route, err := optimizer.OptimizeRoute("distribution_center", []string{"house_1", "house_2"}, "2opt")
	require.NoError(t, err)

	cfg := &config.Config{
		Nodes: []config.Node{
			{ID: "distribution_center", Type: "distribution_center", Name: "Depot"},
			{ID: "house_1", Type: "delivery", Name: "First Stop"},
			{ID: "house_2", Type: "delivery"},
		},
	}

	outputFile := filepath.Join(t.TempDir(), "output.html")
	require.NoError(t, NewHTMLRenderer(g, cfg).RenderRoute(route, outputFile))

	raw, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, `viewBox="0 0 150 150"`)
	assert.Contains(t, html, "polyline")
	// node names from config, plain poi id as fallback
	assert.Contains(t, html, "Depot")
	assert.Contains(t, html, "First Stop")
	assert.Contains(t, html, "house_2")
	// the blocked road renders dashed
	assert.Contains(t, html, "stroke-dasharray")
	assert.Contains(t, html, route.AlgorithmName)
}
