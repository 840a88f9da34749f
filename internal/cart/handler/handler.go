package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

// ProductReader is the part of product.UseCase the cart needs.
type ProductReader interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error)
}

type AddItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type BuyNowResponse struct {
	Item     *cart.LineItem `json:"item"`
	Redirect string         `json:"redirect"`
}

type CartHandler struct {
	products     ProductReader
	checkoutPath string
	validator    *validation.Validation
	rs           *httpx.Responder
	logger       logger.ZapLogger
}

func NewCartHandler(products ProductReader, checkoutPath string, v *validation.Validation, rs *httpx.Responder, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		products:     products,
		checkoutPath: checkoutPath,
		validator:    v,
		rs:           rs,
		logger:       log,
	}
}

func (h *CartHandler) RegisterRoutes(public, _ *mux.Router) {
	public.HandleFunc("/cart/items", h.AddItem).Methods(http.MethodPost)
	public.HandleFunc("/checkout/buy-now", h.BuyNow).Methods(http.MethodPost)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.buildItem(w, r)
	if !ok {
		return
	}
	h.rs.JSON(w, http.StatusOK, map[string]interface{}{
		"item":    item,
		"message": h.rs.Localize(r, "product.addedToCart", nil),
	})
}

func (h *CartHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	item, ok := h.buildItem(w, r)
	if !ok {
		return
	}
	h.rs.JSON(w, http.StatusOK, &BuyNowResponse{
		Item:     item,
		Redirect: h.checkoutPath + "?mode=buynow",
	})
}

func (h *CartHandler) buildItem(w http.ResponseWriter, r *http.Request) (*cart.LineItem, bool) {
	var input AddItemInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return nil, false
	}
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return nil, false
	}

	p, err := h.products.GetProduct(r.Context(), input.ProductID)
	if err == nil && !p.IsActive {
		err = model.ErrNotFound
	}
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.rs.ErrorMessage(w, r, err, "product.notFound", nil)
			return nil, false
		}
		h.logger.Error("failed to load product for cart", zap.String("product_id", input.ProductID), zap.Error(err))
		h.rs.Error(w, r, err)
		return nil, false
	}

	variants, err := h.products.ListVariants(r.Context(), p.ID)
	if err != nil {
		h.logger.Error("failed to load variants for cart", zap.String("product_id", p.ID), zap.Error(err))
		h.rs.Error(w, r, err)
		return nil, false
	}

	item, err := cart.NewLineItem(p, variants, input.VariantID, input.Quantity)
	if err != nil {
		h.cartError(w, r, err)
		return nil, false
	}
	return item, true
}

func (h *CartHandler) cartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cart.ErrVariantRequired):
		h.rs.ErrorMessage(w, r, err, "product.selectVariant", nil)
	case errors.Is(err, cart.ErrInvalidQuantity):
		h.rs.ErrorMessage(w, r, err, "cart.invalidQuantity", nil)
	case errors.Is(err, cart.ErrOutOfStock):
		h.rs.ErrorMessage(w, r, err, "cart.outOfStock", nil)
	case errors.Is(err, cart.ErrInsufficientStock):
		stock, _ := cart.AvailableStock(err)
		h.rs.ErrorMessage(w, r, err, "cart.insufficientStock", map[string]interface{}{"Stock": stock})
	default:
		h.rs.Error(w, r, err)
	}
}
