package main

import (
	"log"
	"net/http"

	"github.com/nordicmagic/backend/internal/middleware"
	"github.com/nordicmagic/backend/pkg/prometheus"
	"github.com/nordicmagic/backend/pkg/router"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: cors.AllowAll().Handler(s.router.Handler()),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	router.POST(s.router, "/api/oracle/consult", s.oracleDomain.Consult)
	router.POST(s.router, "/api/discounts/verify", s.discountDomain.Verify)
	router.GET(s.router, "/api/catalog", s.catalogDomain.GetList)

	s.router.Handle("/metrics", prometheus.NewHandler())
	s.router.Static("/", "./web")
}
