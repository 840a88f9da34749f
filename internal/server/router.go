package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	gohandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RouteRegistrar is implemented by every HTTP handler in the service.
type RouteRegistrar interface {
	RegisterRoutes(public, admin *mux.Router)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterConfig struct {
	AllowedOrigins []string
	// AdminMiddleware guards everything under /api/admin.
	AdminMiddleware mux.MiddlewareFunc
}

// NewRouter mounts handlers under /api and /api/admin and wraps the result with
// CORS, panic recovery and request logging.
func NewRouter(cfg RouterConfig, db Pinger, log logger.ZapLogger, registrars ...RouteRegistrar) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	}).Methods(http.MethodGet)
	router.HandleFunc("/ready", readyHandler(db)).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	admin := api.PathPrefix("/admin").Subrouter()
	if cfg.AdminMiddleware != nil {
		admin.Use(cfg.AdminMiddleware)
	}

	for _, reg := range registrars {
		reg.RegisterRoutes(api, admin)
	}

	var h http.Handler = router
	h = gohandlers.CORS(
		gohandlers.AllowedOrigins(cfg.AllowedOrigins),
		gohandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gohandlers.AllowedHeaders([]string{"Authorization", "Content-Type", "Accept-Language", requestIDHeader}),
		gohandlers.ExposedHeaders([]string{requestIDHeader}),
	)(h)
	h = gohandlers.RecoveryHandler(
		gohandlers.RecoveryLogger(recoveryLogger{log}),
		gohandlers.PrintRecoveryStack(false),
	)(h)
	return loggingMiddleware(log)(h)
}

func readyHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			writeStatus(w, http.StatusOK, "ok")
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
		writeStatus(w, http.StatusOK, "ok")
	}
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"status":"` + status + `"}`))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(log logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}
			w.Header().Set(requestIDHeader, reqID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			fields := []zap.Field{
				zap.String("request_id", reqID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			}
			if rec.status >= http.StatusInternalServerError {
				log.Error("request", fields...)
				return
			}
			log.Info("request", fields...)
		})
	}
}

type recoveryLogger struct {
	log logger.ZapLogger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("panic recovered", zap.Any("panic", v))
}
