package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/category/dto"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

type CategoryHandler struct {
	uc        category.UseCase
	validator *validation.Validation
	rs        *httpx.Responder
	logger    logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, v *validation.Validation, rs *httpx.Responder, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:        uc,
		validator: v,
		rs:        rs,
		logger:    log,
	}
}

func (h *CategoryHandler) RegisterRoutes(public, admin *mux.Router) {
	public.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	public.HandleFunc("/categories/{slug}", h.GetCategory).Methods(http.MethodGet)

	admin.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{id}", h.UpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{id}", h.DeleteCategory).Methods(http.MethodDelete)
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.uc.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := h.uc.GetCategoryBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.categoryError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, cat)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCategoryInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	cat, err := h.uc.CreateCategory(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		h.categoryError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, cat)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.categoryError(w, r, err)
		return
	}
	var input dto.UpdateCategoryInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	input.ID = id
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	cat, err := h.uc.UpdateCategory(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to update category", zap.String("category_id", input.ID), zap.Error(err))
		h.categoryError(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, cat)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.categoryError(w, r, err)
		return
	}
	if err := h.uc.DeleteCategory(r.Context(), id); err != nil {
		h.logger.Error("failed to delete category", zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) categoryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		h.rs.ErrorMessage(w, r, err, "category.notFound", nil)
	case errors.Is(err, model.ErrSlugTaken):
		h.rs.ErrorMessage(w, r, err, "category.slugTaken", nil)
	default:
		h.rs.Error(w, r, err)
	}
}
