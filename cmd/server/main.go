package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/Alphinito/route-optimizer/pkg/server/rest"
	"github.com/Alphinito/route-optimizer/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
)

//	@title			route-optimizer
//	@version		1.0
//	@description 	grid based delivery route optimizer. Dijkstra shortest paths plus nearest neighbor and 2-opt tour heuristics.

//	@contact.name	API Support

//	@host		localhost:5000
//	@BasePath	/api
func main() {
	flag.Parse()

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	navigationSvc := service.NewNavigationService()

	rest.NavigationRouter(r, navigationSvc, m)

	fmt.Printf("\nserver started at %s\n", *listenAddr)

	log.Fatal(http.ListenAndServe(*listenAddr, r))
}
