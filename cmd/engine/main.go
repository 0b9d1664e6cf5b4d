package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/Alphinito/route-optimizer/pkg/config"
	"github.com/Alphinito/route-optimizer/pkg/datastructure"
	"github.com/Alphinito/route-optimizer/pkg/engine/heuristics"
	"github.com/Alphinito/route-optimizer/pkg/engine/routingalgorithm"
	"github.com/Alphinito/route-optimizer/pkg/grid"
	"github.com/Alphinito/route-optimizer/pkg/renderer"
	"github.com/Alphinito/route-optimizer/pkg/util"
)

var (
	configFile = flag.String("config", "config.json", "delivery configuration file")
	strategy   = flag.String("strategy", "2opt", "optimization strategy (nearest_neighbor or 2opt)")
	outputFile = flag.String("o", "output.html", "write the route visualization to this file")
	startPoi   = flag.String("start", "distribution_center", "poi id the route starts from")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	width, height, cellSize := cfg.GridConfig()
	roadGrid, err := grid.NewRoadGrid(width, height, cellSize)
	if err != nil {
		log.Fatal(err)
	}

	for _, node := range cfg.Nodes {
		roadGrid.AddPoi(node.ID, node.GridX, node.GridY)
	}

	if err := applyBlockedRoads(roadGrid, cfg.BlockedRoads()); err != nil {
		log.Fatal(err)
	}

	if len(cfg.DeliveryAddresses) == 0 {
		fmt.Println("no delivery addresses in the configuration, nothing to optimize")
		return
	}

	routeAlgo := routingalgorithm.NewRouteAlgorithm(roadGrid)
	optimizer := heuristics.NewRouteOptimizer(roadGrid, routeAlgo)

	route, err := optimizer.OptimizeRoute(*startPoi, cfg.DeliveryAddresses, *strategy)
	if err != nil {
		log.Fatal(err)
	}

	recordMemProfile(memprofile, "route_optimization")

	htmlRenderer := renderer.NewHTMLRenderer(roadGrid, cfg)
	if err := htmlRenderer.RenderRoute(route, *outputFile); err != nil {
		log.Fatal(err)
	}

	printResults(route, *outputFile)
}

// applyBlockedRoads blocks every configured road in both directions.
func applyBlockedRoads(roadGrid *grid.RoadGrid, blockedRoads [][2]string) error {
	for _, pair := range blockedRoads {
		fromX, fromY, err := grid.ParseIntersectionRef(pair[0])
		if err != nil {
			return err
		}
		toX, toY, err := grid.ParseIntersectionRef(pair[1])
		if err != nil {
			return err
		}
		if !roadGrid.InBounds(fromX, fromY) || !roadGrid.InBounds(toX, toY) {
			log.Printf("skipping blocked road outside the grid: %s -> %s", pair[0], pair[1])
			continue
		}
		from := roadGrid.IntersectionID(fromX, fromY)
		to := roadGrid.IntersectionID(toX, toY)
		roadGrid.BlockRoad(from, to)
		roadGrid.BlockRoad(to, from)
	}
	return nil
}

func printResults(route datastructure.OptimizedRoute, outputFile string) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Println("OPTIMIZATION COMPLETED")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("route: %s\n", strings.Join(route.PoiPath, " → "))
	fmt.Printf("intersections traversed: %d\n", len(route.FullPath))
	fmt.Printf("total distance: %.2f px\n", util.RoundFloat(route.TotalDistance, 2))
	fmt.Printf("algorithm: %s", route.AlgorithmName)
	if route.Iterations > 0 {
		fmt.Printf(" (%d iterations)", route.Iterations)
	}
	fmt.Printf("\noutput file: %s\n", outputFile)
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))
}

func recordMemProfile(memprofile *string, name string) {
	if *memprofile != "" {
		*memprofile = strings.Replace(*memprofile, ".mprof", fmt.Sprintf("%s.mprof", name), -1)
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
