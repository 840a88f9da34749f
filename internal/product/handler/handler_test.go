package handler_test

import (
	"context"
	"encoding/json"
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
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
	"github.com/fekuna/omnipos-storefront/internal/product/handler"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
	"github.com/fekuna/omnipos-storefront/internal/variant"
)

// stubUseCase implements only what the tests exercise; other methods panic.
type stubUseCase struct {
	product.UseCase

	featured  []model.Product
	created   *dto.CreateProductInput
	selection *dto.SelectionInput
}

func (s *stubUseCase) ListFeatured(context.Context) ([]model.Product, error) {
	return s.featured, nil
}

func (s *stubUseCase) GetProductDetail(_ context.Context, slug string) (*dto.ProductDetail, error) {
	if slug != "linen-shirt" {
		return nil, model.ErrNotFound
	}
	return &dto.ProductDetail{Product: &model.Product{Slug: slug}}, nil
}

func (s *stubUseCase) ApplySelection(_ context.Context, _ string, in *dto.SelectionInput) (*dto.SelectionView, error) {
	s.selection = in
	return &dto.SelectionView{Price: 950, Stock: 4, InStock: true}, nil
}

func (s *stubUseCase) CreateProduct(_ context.Context, in *dto.CreateProductInput) (*model.Product, error) {
	s.created = in
	if in.SKU == "TAKEN" {
		return nil, model.ErrSKUTaken
	}
	return &model.Product{BaseModel: model.BaseModel{ID: "new"}, Name: in.Name}, nil
}

func newRouter(t *testing.T, uc product.UseCase) *mux.Router {
	t.Helper()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	admin := api.PathPrefix("/admin").Subrouter()
	h := handler.NewProductHandler(uc, validation.New(), httpx.NewResponder(tr, logger.NewNop()), logger.NewNop())
	h.RegisterRoutes(api, admin)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListFeatured(t *testing.T) {
	uc := &stubUseCase{featured: []model.Product{{Slug: "a"}, {Slug: "b"}}}
	w := do(newRouter(t, uc), http.MethodGet, "/api/products/featured", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Products []model.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Products, 2)
}

func TestGetProductDetail(t *testing.T) {
	r := newRouter(t, &stubUseCase{})

	w := do(r, http.MethodGet, "/api/products/linen-shirt/detail", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/products/missing/detail", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestApplySelection(t *testing.T) {
	uc := &stubUseCase{}
	w := do(newRouter(t, uc), http.MethodPost, "/api/products/linen-shirt/selection",
		`{"variant_id":"v-m","action":{"type":"select_size","value":"S"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.selection)
	assert.Equal(t, "v-m", uc.selection.VariantID)
	assert.Equal(t, variant.SelectSize, uc.selection.Action.Type)

	w = do(newRouter(t, uc), http.MethodPost, "/api/products/linen-shirt/selection", `{"bogus":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"name":"Kurti","sku":"K-1","price":100,"images":["a.jpg"]}`, http.StatusCreated},
		{"missing image", `{"name":"Kurti","sku":"K-1","price":100,"images":[]}`, http.StatusUnprocessableEntity},
		{"bad slug", `{"name":"Kurti","slug":"Not A Slug","sku":"K-1","images":["a.jpg"]}`, http.StatusUnprocessableEntity},
		{"sku taken", `{"name":"Kurti","sku":"TAKEN","images":["a.jpg"]}`, http.StatusConflict},
		{"malformed", `{"name":`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(newRouter(t, &stubUseCase{}), http.MethodPost, "/api/admin/products", tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func TestAdminRoutesRejectMalformedIDs(t *testing.T) {
	const productID = "5d2e8f1a-7c3b-4e90-b6a4-1f0c9d2e7a35"

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"update product", http.MethodPut, "/api/admin/products/p1"},
		{"delete product", http.MethodDelete, "/api/admin/products/p1"},
		{"add variant", http.MethodPost, "/api/admin/products/p1/variants"},
		{"update variant", http.MethodPut, "/api/admin/products/" + productID + "/variants/v1"},
		{"delete variant", http.MethodDelete, "/api/admin/products/p1/variants/" + productID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// The stub implements none of these operations; reaching it would panic.
			w := do(newRouter(t, &stubUseCase{}), tc.method, tc.path, `{}`)
			assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
		})
	}
}
