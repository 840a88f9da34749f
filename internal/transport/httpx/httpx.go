// Package httpx holds the JSON request/response helpers shared by every HTTP handler.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/i18n"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// Responder writes JSON bodies and maps domain errors to statuses with localized messages.
type Responder struct {
	tr     *i18n.Translator
	logger logger.ZapLogger
}

func NewResponder(tr *i18n.Translator, log logger.ZapLogger) *Responder {
	return &Responder{tr: tr, logger: log}
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rs.logger.Error("failed to encode response", zap.Error(err))
	}
}

// Error renders err with the default message for its class.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	rs.ErrorMessage(w, r, err, "", nil)
}

// ErrorMessage renders err using messageID instead of the default message; an empty
// messageID keeps the default.
func (rs *Responder) ErrorMessage(w http.ResponseWriter, r *http.Request, err error, messageID string, data map[string]interface{}) {
	status, defaultID := Classify(err)
	if messageID == "" {
		messageID = defaultID
	}

	body := ErrorResponse{Error: rs.Localize(r, messageID, data)}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		body.Fields = verrs
	}

	if status >= http.StatusInternalServerError {
		rs.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	rs.JSON(w, status, body)
}

// Localize translates messageID for the request's language.
func (rs *Responder) Localize(r *http.Request, messageID string, data map[string]interface{}) string {
	if rs.tr == nil {
		return messageID
	}
	return rs.tr.FromRequest(r, messageID, data)
}

// Classify returns the status code and default message ID for err.
func Classify(err error) (int, string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity, "common.validation"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "common.notFound"
	case errors.Is(err, model.ErrSlugTaken):
		return http.StatusConflict, "product.slugTaken"
	case errors.Is(err, model.ErrSKUTaken):
		return http.StatusConflict, "product.skuTaken"
	case errors.Is(err, model.ErrInsufficientStock):
		return http.StatusConflict, "inventory.insufficient"
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, "common.badRequest"
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, "common.unauthorized"
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, "common.forbidden"
	case errors.Is(err, model.ErrBusy):
		return http.StatusServiceUnavailable, "inventory.busy"
	}
	return http.StatusInternalServerError, "common.internal"
}

// PathID returns the route variable name when it is a well-formed id. Anything else
// cannot name a stored row and is reported as model.ErrNotFound.
func PathID(r *http.Request, name string) (string, error) {
	id := mux.Vars(r)[name]
	if !model.IsID(id) {
		return "", fmt.Errorf("%w: malformed %s %q", model.ErrNotFound, name, id)
	}
	return id, nil
}

// DecodeJSON reads a single JSON object from the request body into dst.
// Unknown fields are rejected; decode failures wrap model.ErrInvalidInput.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}
