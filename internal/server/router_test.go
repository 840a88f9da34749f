package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/server"
)

type fakeDB struct{ err error }

func (f fakeDB) PingContext(context.Context) error { return f.err }

type routes struct{}

func (routes) RegisterRoutes(public, admin *mux.Router) {
	public.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	public.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	admin.HandleFunc("/secret", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func denyAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func serve(h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	cfg := server.RouterConfig{AllowedOrigins: []string{"*"}, AdminMiddleware: denyAll}
	h := server.NewRouter(cfg, fakeDB{}, logger.NewNop(), routes{})

	tests := []struct {
		path   string
		status int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/api/ping", http.StatusTeapot},
		{"/api/admin/secret", http.StatusUnauthorized},
		{"/api/boom", http.StatusInternalServerError},
		{"/api/missing", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := serve(h, tc.path, nil)
			assert.Equal(t, tc.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestReadyReflectsDatabase(t *testing.T) {
	h := server.NewRouter(server.RouterConfig{}, fakeDB{err: errors.New("down")}, logger.NewNop())

	w := serve(h, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}

func TestRequestIDPropagates(t *testing.T) {
	h := server.NewRouter(server.RouterConfig{}, nil, logger.NewNop())

	w := serve(h, "/health", http.Header{"X-Request-Id": {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
