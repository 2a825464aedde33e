package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia routes plus the operational endpoints
// (health, metrics). Every response passes through the CORS, request-logging
// and metrics middleware.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, handlers *trivia.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			reqLogger := logging.FromContext(r.Context())
			reqLogger.Error().Err(err).Msg("database ping failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /categories", handlers.GetCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handlers.GetQuestionsByCategory)
	mux.HandleFunc("GET /questions", handlers.GetQuestions)
	mux.HandleFunc("POST /questions", handlers.CreateOrSearchQuestions)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /quiz", handlers.PlayQuiz)

	handler := corsMiddleware(cfg.CORS, requestMiddleware(logger, mux))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}
