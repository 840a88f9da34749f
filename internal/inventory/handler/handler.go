package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/auth"
	"github.com/fekuna/omnipos-storefront/internal/inventory"
	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

const defaultPageSize = 50

type InventoryHandler struct {
	uc        inventory.UseCase
	validator *validation.Validation
	rs        *httpx.Responder
	logger    logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, v *validation.Validation, rs *httpx.Responder, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:        uc,
		validator: v,
		rs:        rs,
		logger:    log,
	}
}

// RegisterRoutes mounts stock management on admin only; shoppers read stock through products.
func (h *InventoryHandler) RegisterRoutes(_, admin *mux.Router) {
	admin.HandleFunc("/inventory/adjust", h.AdjustStock).Methods(http.MethodPost)
	admin.HandleFunc("/inventory/movements", h.ListMovements).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{productID}", h.GetStock).Methods(http.MethodGet)
}

func (h *InventoryHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	var variantID *string
	if v := r.URL.Query().Get("variant_id"); v != "" {
		variantID = &v
	}

	productID, err := httpx.PathID(r, "productID")
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	level, err := h.uc.GetStock(r.Context(), productID, variantID)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, level)
}

func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var input dto.AdjustStockInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	input.UserID = auth.UserID(r.Context())

	level, err := h.uc.AdjustStock(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to adjust stock",
			zap.String("product_id", input.ProductID),
			zap.Int("quantity_change", input.QuantityChange),
			zap.Error(err),
		)
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, level)
}

func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &dto.MovementFilters{
		ProductID:    q.Get("product_id"),
		VariantID:    q.Get("variant_id"),
		MovementType: q.Get("movement_type"),
		Page:         1,
		PageSize:     defaultPageSize,
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filters.Page = page
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil && size > 0 && size <= 200 {
		filters.PageSize = size
	}
	for _, id := range []string{filters.ProductID, filters.VariantID} {
		if id != "" && !model.IsID(id) {
			h.rs.Error(w, r, fmt.Errorf("%w: malformed id %q", model.ErrInvalidInput, id))
			return
		}
	}

	items, total, err := h.uc.ListMovements(r.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list stock movements", zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, map[string]interface{}{
		"movements": items,
		"total":     total,
		"page":      filters.Page,
		"page_size": filters.PageSize,
	})
}
