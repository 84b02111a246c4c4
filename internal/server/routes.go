package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/omarshaarawi/leaguedash/internal/config"
	"github.com/omarshaarawi/leaguedash/internal/service"
)

type Server struct {
	dashboard *service.DashboardService
}

func New(dashboard *service.DashboardService) *Server {
	return &Server{dashboard: dashboard}
}

// Routes mounts the dashboard API. The static dashboard is hosted on its own
// origin, so CORS is opened to the configured origins.
func (s *Server) Routes(cfg config.HTTP) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", s.handleConfig)
		r.Get("/seasons", s.handleSeasons)
		r.Route("/seasons/{year}", func(r chi.Router) {
			r.Get("/rankings", s.handleRankings)
			r.Get("/ratings", s.handleRatings)
			r.Get("/positions", s.handlePositions)
			r.Get("/variance", s.handleVariance)
			r.Get("/teams/{team}", s.handleTeam)
			r.Post("/reload", s.handleReload)
		})
	})

	return r
}
