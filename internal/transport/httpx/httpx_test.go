package httpx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/i18n"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{model.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("get product: %w", model.ErrNotFound), http.StatusNotFound},
		{model.ErrSKUTaken, http.StatusConflict},
		{model.ErrSlugTaken, http.StatusConflict},
		{model.ErrInsufficientStock, http.StatusConflict},
		{model.ErrInvalidInput, http.StatusBadRequest},
		{model.ErrUnauthorized, http.StatusUnauthorized},
		{model.ErrForbidden, http.StatusForbidden},
		{model.ErrBusy, http.StatusServiceUnavailable},
		{validation.Errors{{Field: "name", Message: "is required"}}, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		status, id := httpx.Classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.NotEmpty(t, id)
	}
}

func TestErrorMessageLocalized(t *testing.T) {
	tr, err := i18n.New("en")
	require.NoError(t, err)
	rs := httpx.NewResponder(tr, logger.NewNop())

	r := httptest.NewRequest(http.MethodGet, "/api/products/x", nil)
	w := httptest.NewRecorder()
	rs.ErrorMessage(w, r, model.ErrNotFound, "product.notFound", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Product not found", body.Error)
}

func TestErrorValidationFields(t *testing.T) {
	rs := httpx.NewResponder(nil, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
	w := httptest.NewRecorder()
	rs.Error(w, r, validation.Errors{{Field: "name", Message: "is required"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "common.validation", body.Error)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "name", body.Fields[0].Field)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"shirt"}`))
	require.NoError(t, httpx.DecodeJSON(r, &dst))
	assert.Equal(t, "shirt", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nope":1}`))
	assert.ErrorIs(t, httpx.DecodeJSON(r, &dst), model.ErrInvalidInput)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.ErrorIs(t, httpx.DecodeJSON(r, &dst), model.ErrInvalidInput)
}

func TestPathID(t *testing.T) {
	const id = "6f1c2a4e-3b7d-4c1e-9a55-0d2f8e6b1c90"

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id})
	got, err := httpx.PathID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "not-a-uuid"})
	_, err = httpx.PathID(r, "id")
	assert.ErrorIs(t, err, model.ErrNotFound)
	status, _ := httpx.Classify(err)
	assert.Equal(t, http.StatusNotFound, status)
}
