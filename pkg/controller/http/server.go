package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server around one configured migrator. The
// environments are fixed at startup; requests only choose what to migrate.
func NewServer(ctx context.Context, addr string, migrator usecase.Migrator, sourceEnv, targetEnv model.Environment) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	migrationHandler := NewMigrationHandler(migrator, sourceEnv, targetEnv)

	router.Get("/health", handleHealth)
	router.Get("/", migrationHandler.HandleForm)

	router.Route("/api", func(r chi.Router) {
		r.Post("/migrations", migrationHandler.HandleMigrate)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "dashmover",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
