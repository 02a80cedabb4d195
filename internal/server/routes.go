package server

import (
	"log/slog"
	"net/http"
)

// Config contains server configuration options.
type Config struct {
	// AllowedOrigins is the list of allowed CORS origins.
	AllowedOrigins []string
	// Metrics enables request counting and the /metrics endpoint when set.
	Metrics *Metrics
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		AllowedOrigins: []string{"*"},
	}
}

// NewRouter creates a new HTTP router with all routes configured.
// It uses Go 1.22+ ServeMux with method-based routing.
func NewRouter(h *Handlers, logger *slog.Logger, cfg Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /vacancies", h.ListVacancies)
	mux.HandleFunc("POST /vacancies", h.CreateVacancy)
	mux.HandleFunc("GET /vacancies/{id}", h.GetVacancy)
	mux.HandleFunc("PUT /vacancies/{id}", h.UpdateVacancy)
	mux.HandleFunc("DELETE /vacancies/{id}", h.DeleteVacancy)

	mux.HandleFunc("GET /candidates", h.ListCandidates)
	mux.HandleFunc("POST /candidates", h.CreateCandidate)
	mux.HandleFunc("GET /candidates/{id}", h.GetCandidate)
	mux.HandleFunc("PUT /candidates/{id}", h.UpdateCandidate)
	mux.HandleFunc("DELETE /candidates/{id}", h.DeleteCandidate)

	mux.HandleFunc("GET /cities", h.ListCities)
	mux.HandleFunc("GET /cities/{id}", h.GetCity)

	mux.HandleFunc("POST /files", h.UploadFile)
	mux.HandleFunc("GET /files/{id}", h.GetFile)
	mux.HandleFunc("PUT /files/{id}", h.RenameFile)
	mux.HandleFunc("DELETE /files/{id}", h.DeleteFile)

	middlewares := []func(http.Handler) http.Handler{
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
	}
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
		middlewares = append(middlewares, cfg.Metrics.Middleware)
	}
	middlewares = append(middlewares, CORSMiddleware(cfg.AllowedOrigins))

	return ChainMiddleware(middlewares...)(mux)
}
