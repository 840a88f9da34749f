package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/auth"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
)

func token(t *testing.T, v *auth.Verifier, roles ...string) string {
	t.Helper()
	tok, err := v.Sign(&auth.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	return tok
}

func TestRequireAdmin(t *testing.T) {
	v := auth.NewVerifier("secret", "admin")
	other := auth.NewVerifier("other-secret", "admin")
	rs := httpx.NewResponder(nil, logger.NewNop())

	var subject string
	h := v.RequireAdmin(rs, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = auth.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"wrong signature", "Bearer " + token(t, other, "admin"), http.StatusUnauthorized},
		{"missing role", "Bearer " + token(t, v, "customer"), http.StatusForbidden},
		{"admin", "Bearer " + token(t, v, "customer", "admin"), http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, tc.status, w.Code)
		})
	}
	assert.Equal(t, "user-1", subject)
}

func TestGetBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, auth.GetBearerToken(r))

	r.Header.Set("Authorization", "bearer abc")
	assert.Equal(t, "abc", auth.GetBearerToken(r))
}
