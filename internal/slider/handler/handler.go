package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/slider"
	"github.com/fekuna/omnipos-storefront/internal/slider/dto"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

type SlideHandler struct {
	uc        slider.UseCase
	validator *validation.Validation
	rs        *httpx.Responder
	logger    logger.ZapLogger
}

func NewSlideHandler(uc slider.UseCase, v *validation.Validation, rs *httpx.Responder, log logger.ZapLogger) *SlideHandler {
	return &SlideHandler{uc: uc, validator: v, rs: rs, logger: log}
}

func (h *SlideHandler) RegisterRoutes(public, admin *mux.Router) {
	public.HandleFunc("/slides", h.listSlides(true)).Methods(http.MethodGet)

	admin.HandleFunc("/slides", h.listSlides(false)).Methods(http.MethodGet)
	admin.HandleFunc("/slides", h.CreateSlide).Methods(http.MethodPost)
	admin.HandleFunc("/slides/{id}", h.UpdateSlide).Methods(http.MethodPut)
	admin.HandleFunc("/slides/{id}", h.DeleteSlide).Methods(http.MethodDelete)
}

func (h *SlideHandler) listSlides(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slides, err := h.uc.ListSlides(r.Context(), activeOnly)
		if err != nil {
			h.logger.Error("failed to list slides", zap.Error(err))
			h.rs.Error(w, r, err)
			return
		}
		h.rs.JSON(w, http.StatusOK, map[string]interface{}{"slides": slides})
	}
}

func (h *SlideHandler) CreateSlide(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSlideInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	s, err := h.uc.CreateSlide(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create slide", zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, s)
}

func (h *SlideHandler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.rs.ErrorMessage(w, r, err, "slide.notFound", nil)
		return
	}
	var input dto.UpdateSlideInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	input.ID = id
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	s, err := h.uc.UpdateSlide(r.Context(), &input)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.rs.ErrorMessage(w, r, err, "slide.notFound", nil)
			return
		}
		h.logger.Error("failed to update slide", zap.String("slide_id", input.ID), zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, s)
}

func (h *SlideHandler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.uc.DeleteSlide(r.Context(), id); err != nil {
		h.logger.Error("failed to delete slide", zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
