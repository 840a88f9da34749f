package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

type ProductHandler struct {
	uc        product.UseCase
	validator *validation.Validation
	rs        *httpx.Responder
	logger    logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, v *validation.Validation, rs *httpx.Responder, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:        uc,
		validator: v,
		rs:        rs,
		logger:    log,
	}
}

// RegisterRoutes mounts the storefront reads on public and the catalogue writes on admin.
// Fixed paths are registered before {slug} so they win the match.
func (h *ProductHandler) RegisterRoutes(public, admin *mux.Router) {
	public.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	public.HandleFunc("/products/featured", h.ListFeatured).Methods(http.MethodGet)
	public.HandleFunc("/products/best-sellers", h.ListBestSellers).Methods(http.MethodGet)
	public.HandleFunc("/products/new-arrivals", h.ListNewArrivals).Methods(http.MethodGet)
	public.HandleFunc("/products/search", h.SearchProducts).Methods(http.MethodGet)
	public.HandleFunc("/products/{slug}", h.GetProduct).Methods(http.MethodGet)
	public.HandleFunc("/products/{slug}/detail", h.GetProductDetail).Methods(http.MethodGet)
	public.HandleFunc("/products/{slug}/variants", h.ListVariants).Methods(http.MethodGet)
	public.HandleFunc("/products/{slug}/related", h.ListRelated).Methods(http.MethodGet)
	public.HandleFunc("/products/{slug}/selection", h.ApplySelection).Methods(http.MethodPost)
	public.HandleFunc("/categories/{slug}/products", h.ListByCategory).Methods(http.MethodGet)

	admin.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", h.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", h.DeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/products/{id}/variants", h.AddVariant).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}/variants/{variantID}", h.UpdateVariant).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}/variants/{variantID}", h.DeleteVariant).Methods(http.MethodDelete)
}

// --- Storefront ---

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &dto.ProductFilters{
		CategorySlug: q.Get("category"),
		SearchQuery:  q.Get("q"),
		SortBy:       q.Get("sort_by"),
		SortOrder:    q.Get("sort_order"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filters.Limit = limit
	}

	products, err := h.uc.ListProducts(r.Context(), filters)
	h.writeList(w, r, products, err)
}

func (h *ProductHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.ListFeatured(r.Context())
	h.writeList(w, r, products, err)
}

func (h *ProductHandler) ListBestSellers(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.ListBestSellers(r.Context())
	h.writeList(w, r, products, err)
}

func (h *ProductHandler) ListNewArrivals(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.ListNewArrivals(r.Context())
	h.writeList(w, r, products, err)
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.ListByCategory(r.Context(), mux.Vars(r)["slug"])
	h.writeList(w, r, products, err)
}

func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	h.writeList(w, r, products, err)
}

func (h *ProductHandler) writeList(w http.ResponseWriter, r *http.Request, products []model.Product, err error) {
	if err != nil {
		h.logger.Error("failed to list products", zap.String("path", r.URL.Path), zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProductBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.productError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) GetProductDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.uc.GetProductDetail(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.productError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, detail)
}

func (h *ProductHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProductBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.productError(w, r, err)
		return
	}
	variants, err := h.uc.ListVariants(r.Context(), p.ID)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, map[string]interface{}{"variants": variants})
}

func (h *ProductHandler) ListRelated(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProductBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.productError(w, r, err)
		return
	}
	products, err := h.uc.ListRelated(r.Context(), p, 0)
	h.writeList(w, r, products, err)
}

func (h *ProductHandler) ApplySelection(w http.ResponseWriter, r *http.Request) {
	var input dto.SelectionInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	view, err := h.uc.ApplySelection(r.Context(), mux.Vars(r)["slug"], &input)
	if err != nil {
		h.productError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, view)
}

func (h *ProductHandler) productError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrNotFound) {
		h.rs.ErrorMessage(w, r, err, "product.notFound", nil)
		return
	}
	h.rs.Error(w, r, err)
}

// --- Admin ---

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		h.productError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.productError(w, r, err)
		return
	}
	var input dto.UpdateProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	input.ID = id
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to update product", zap.String("product_id", input.ID), zap.Error(err))
		h.productError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.productError(w, r, err)
		return
	}
	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		h.logger.Error("failed to delete product", zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) AddVariant(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.productError(w, r, err)
		return
	}
	var input dto.CreateVariantInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	input.ProductID = id
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	v, err := h.uc.AddVariant(r.Context(), &input)
	if err != nil {
		h.productError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, v)
}

func (h *ProductHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	productID, variantID, err := variantPath(r)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var input dto.UpdateVariantInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	input.ProductID, input.ID = productID, variantID
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	v, err := h.uc.UpdateVariant(r.Context(), &input)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, v)
}

func (h *ProductHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	productID, variantID, err := variantPath(r)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.uc.DeleteVariant(r.Context(), productID, variantID); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func variantPath(r *http.Request) (string, string, error) {
	productID, err := httpx.PathID(r, "id")
	if err != nil {
		return "", "", err
	}
	variantID, err := httpx.PathID(r, "variantID")
	if err != nil {
		return "", "", err
	}
	return productID, variantID, nil
}
