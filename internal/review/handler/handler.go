package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/review"
	"github.com/fekuna/omnipos-storefront/internal/review/dto"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

type ReviewHandler struct {
	uc        review.UseCase
	validator *validation.Validation
	rs        *httpx.Responder
	logger    logger.ZapLogger
}

func NewReviewHandler(uc review.UseCase, v *validation.Validation, rs *httpx.Responder, log logger.ZapLogger) *ReviewHandler {
	return &ReviewHandler{uc: uc, validator: v, rs: rs, logger: log}
}

func (h *ReviewHandler) RegisterRoutes(public, admin *mux.Router) {
	public.HandleFunc("/reviews", h.list(true)).Methods(http.MethodGet)
	public.HandleFunc("/reviews", h.SubmitReview).Methods(http.MethodPost)
	public.HandleFunc("/products/{id}/reviews", h.ListProductReviews).Methods(http.MethodGet)

	admin.HandleFunc("/reviews", h.list(false)).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{id}/approve", h.ApproveReview).Methods(http.MethodPost)
	admin.HandleFunc("/reviews/{id}", h.DeleteReview).Methods(http.MethodDelete)
}

func (h *ReviewHandler) list(approvedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := h.uc.ListReviews(r.Context(), approvedOnly)
		if err != nil {
			h.logger.Error("failed to list reviews", zap.Error(err))
			h.rs.Error(w, r, err)
			return
		}
		h.rs.JSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
	}
}

func (h *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.uc.ListProductReviews(r.Context(), mux.Vars(r)["id"], true)
	if err != nil {
		h.logger.Error("failed to list product reviews", zap.Error(err))
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var input dto.SubmitReviewInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(&input); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	rv, err := h.uc.SubmitReview(r.Context(), &input)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, rv)
}

func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err == nil {
		err = h.uc.ApproveReview(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.rs.ErrorMessage(w, r, err, "review.notFound", nil)
			return
		}
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.uc.DeleteReview(r.Context(), id); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
