package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestMiddleware tags each request with an id, injects a request-scoped
// logger into the context, and records access logs plus Prometheus metrics.
func requestMiddleware(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		reqLogger := logger.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		rec.Header().Set("X-Request-ID", requestID)

		req := r.WithContext(logging.IntoContext(r.Context(), reqLogger))
		next.ServeHTTP(rec, req)

		// The mux fills in req.Pattern during routing. Labeling metrics with
		// the pattern keeps cardinality bounded; raw paths like /questions/17
		// would mint a new series per id.
		pattern := req.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}

		elapsed := time.Since(start)
		observeRequest(r.Method, pattern, strconv.Itoa(rec.status), elapsed)

		reqLogger.Info().
			Int("status", rec.status).
			Dur("elapsed", elapsed).
			Msg("request handled")
	})
}

// corsMiddleware applies the configured CORS headers to every response and
// short-circuits preflight requests.
func corsMiddleware(cfg config.CORS, next http.Handler) http.Handler {
	allowedOrigins := strings.Join(cfg.AllowedOrigins, ", ")
	allowedMethods := strings.Join(cfg.AllowedMethods, ", ")
	allowedHeaders := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allowedOrigins)
		h.Set("Access-Control-Allow-Methods", allowedMethods)
		h.Set("Access-Control-Allow-Headers", allowedHeaders)
		if cfg.AllowCredentials {
			h.Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
