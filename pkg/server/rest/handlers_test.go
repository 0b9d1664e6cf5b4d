package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alphinito/route-optimizer/pkg/server/rest/service"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	m := NewMetrics(prometheus.NewRegistry())
	NavigationRouter(r, service.NewNavigationService(), m)
	return r
}

func postOptimization(t *testing.T, r *chi.Mux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/navigation/route-optimization",
		bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestOptimizeRouteHandler(t *testing.T) {
	rec := postOptimization(t, newTestRouter(), `{
		"grid": {"width": 3, "height": 3, "cell_size": 50},
		"nodes": [
			{"id": "center", "grid_x": 1, "grid_y": 1},
			{"id": "a", "grid_x": 0, "grid_y": 0},
			{"id": "b", "grid_x": 2, "grid_y": 2}
		],
		"start_poi": "center",
		"destinations": ["a", "b"],
		"strategy": "2opt"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RouteOptimizationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "center", resp.Path[0])
	assert.Len(t, resp.Path, 3)
	assert.InDelta(t, 300.0, resp.TotalDistance, 1e-9)
	assert.Equal(t, "grid_1_1", resp.FullPath[0])
	assert.Equal(t, "TSP + 2-Opt Local Search", resp.Algorithm)
}

func TestOptimizeRouteHandlerValidation(t *testing.T) {
	// empty destinations rejected before the optimizer runs
	rec := postOptimization(t, newTestRouter(), `{
		"nodes": [{"id": "center", "grid_x": 1, "grid_y": 1}],
		"start_poi": "center",
		"destinations": []
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postOptimization(t, newTestRouter(), `{
		"nodes": [{"id": "center", "grid_x": 1, "grid_y": 1}],
		"destinations": ["a"]
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptimizeRouteHandlerClampsNegativeCoordinates(t *testing.T) {
	// out-of-bounds node coordinates clamp into the grid, same as the CLI path
	rec := postOptimization(t, newTestRouter(), `{
		"grid": {"width": 3, "height": 3, "cell_size": 50},
		"nodes": [
			{"id": "center", "grid_x": 1, "grid_y": 1},
			{"id": "a", "grid_x": -5, "grid_y": -5}
		],
		"start_poi": "center",
		"destinations": ["a"],
		"strategy": "nearest_neighbor"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RouteOptimizationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// "a" lands on the clamped corner (0,0)
	assert.Equal(t, "grid_0_0", resp.FullPath[len(resp.FullPath)-1])
	assert.InDelta(t, 100.0, resp.TotalDistance, 1e-9)
}

func TestOptimizeRouteHandlerUnknownStrategy(t *testing.T) {
	rec := postOptimization(t, newTestRouter(), `{
		"nodes": [
			{"id": "center", "grid_x": 1, "grid_y": 1},
			{"id": "a", "grid_x": 0, "grid_y": 0}
		],
		"start_poi": "center",
		"destinations": ["a"],
		"strategy": "brute_force"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nearest_neighbor")
}

func TestOptimizeRouteHandlerUnreachable(t *testing.T) {
	rec := postOptimization(t, newTestRouter(), `{
		"grid": {"width": 3, "height": 3, "cell_size": 50},
		"nodes": [
			{"id": "center", "grid_x": 1, "grid_y": 1},
			{"id": "a", "grid_x": 0, "grid_y": 0}
		],
		"blocked_roads": [
			{"from": "grid_0_0", "to": "grid_1_0"},
			{"from": "grid_0_0", "to": "grid_0_1"}
		],
		"start_poi": "center",
		"destinations": ["a"]
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
