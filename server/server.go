// Package server provides HTTP server setup, middleware configuration,
// route management and graceful shutdown for the medication safety API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ntufar/meps/config"
	"github.com/ntufar/meps/handlers"
	"github.com/ntufar/meps/logging"
	"github.com/ntufar/meps/metrics"
)

// Server represents the HTTP server
type Server struct {
	server  *http.Server
	router  chi.Router
	handler *handlers.Handler
	config  *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, handler *handlers.Handler) *Server {
	router := chi.NewRouter()

	server := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:  router,
		handler: handler,
		config:  cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(logging.DefaultLoggingService.Logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(RateLimitHandler)
	s.router.Use(metrics.Metrics)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Safety checks
	s.router.Post("/check", s.handler.CheckAll)
	s.router.Post("/check/interactions", s.handler.CheckInteractions)
	s.router.Post("/check/allergies", s.handler.CheckAllergies)
	s.router.Post("/check/contraindications", s.handler.CheckContraindications)
	s.router.Post("/check/dosage", s.handler.CalculateDosage)

	// Catalog and reference lookups
	s.router.Get("/medications", s.handler.ServeCatalog)
	s.router.Get("/medications/page/{pageNumber}", s.handler.ServePagedCatalog)
	s.router.Get("/medications/search/{term}", s.handler.SearchCatalog)
	s.router.Get("/medications/categories", s.handler.ServeCategories)
	s.router.Get("/medications/{name}", s.handler.FindMedicationByName)
	s.router.Get("/interactions/{medication}", s.handler.FindInteractionsForMedication)
	s.router.Get("/contraindications/{medication}", s.handler.FindContraindicationsForMedication)
	s.router.Get("/allergies/common", s.handler.ServeCommonAllergies)

	// Review sessions
	s.router.Post("/sessions", s.handler.CreateSession)
	s.router.Get("/sessions", s.handler.ListSessions)
	s.router.Post("/sessions/import", s.handler.ImportSession)
	s.router.Get("/sessions/{id}", s.handler.GetSession)
	s.router.Delete("/sessions/{id}", s.handler.DeleteSession)
	s.router.Post("/sessions/{id}/medications", s.handler.AddSessionMedication)
	s.router.Delete("/sessions/{id}/medications/{medicationId}", s.handler.RemoveSessionMedication)
	s.router.Put("/sessions/{id}/patient", s.handler.SetSessionPatient)
	s.router.Post("/sessions/{id}/check", s.handler.CheckSession)
	s.router.Get("/sessions/{id}/export", s.handler.ExportSession)
	s.router.Get("/sessions/{id}/report", s.handler.SessionReport)

	// Operational endpoints
	s.router.Get("/health", s.handler.HealthCheck)
	s.router.Handle("/metrics", promhttp.Handler())
}

// Start starts the server
func (s *Server) Start() error {
	if s.config.Env == "dev" {
		s.startProfilingServer()
	}

	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}

// Router exposes the chi router for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// startProfilingServer starts the pprof profiling server in development mode
func (s *Server) startProfilingServer() {
	go func() {
		fmt.Println("Profiling server started at http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			fmt.Println("Profiling server failed: ", err)
		}
	}()
}
