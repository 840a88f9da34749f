package handler_test

import (
	"context"
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
	"github.com/fekuna/omnipos-storefront/internal/slider"
	"github.com/fekuna/omnipos-storefront/internal/slider/dto"
	"github.com/fekuna/omnipos-storefront/internal/slider/handler"
	"github.com/fekuna/omnipos-storefront/internal/transport/httpx"
	"github.com/fekuna/omnipos-storefront/internal/validation"
)

const (
	slideID   = "0b8d6a3e-5f2c-4e71-a9d4-3c6e1f7b2a58"
	missingID = "7e2f9c41-1d3b-4a8e-b6f0-95c2d8a4e173"
)

type stubUseCase struct {
	slider.UseCase

	activeOnly []bool
	updated    *dto.UpdateSlideInput
}

func (s *stubUseCase) ListSlides(_ context.Context, activeOnly bool) ([]model.SliderSlide, error) {
	s.activeOnly = append(s.activeOnly, activeOnly)
	return []model.SliderSlide{{Heading: "Eid Collection"}}, nil
}

func (s *stubUseCase) CreateSlide(_ context.Context, in *dto.CreateSlideInput) (*model.SliderSlide, error) {
	return &model.SliderSlide{Image: in.Image, Heading: in.Heading}, nil
}

func (s *stubUseCase) UpdateSlide(_ context.Context, in *dto.UpdateSlideInput) (*model.SliderSlide, error) {
	s.updated = in
	if in.ID != slideID {
		return nil, model.ErrNotFound
	}
	return &model.SliderSlide{Heading: in.Heading}, nil
}

func newRouter(t *testing.T, uc slider.UseCase) http.Handler {
	t.Helper()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	admin := api.PathPrefix("/admin").Subrouter()
	h := handler.NewSlideHandler(uc, validation.New(), httpx.NewResponder(tr, logger.NewNop()), logger.NewNop())
	h.RegisterRoutes(api, admin)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListSlides(t *testing.T) {
	uc := &stubUseCase{}
	r := newRouter(t, uc)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/slides", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/admin/slides", "").Code)
	assert.Equal(t, []bool{true, false}, uc.activeOnly)
}

func TestCreateSlide(t *testing.T) {
	r := newRouter(t, &stubUseCase{})

	w := do(r, http.MethodPost, "/api/admin/slides", `{"image":"hero.jpg","heading":"New Season"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/admin/slides", `{"heading":"No image","sort_order":-1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateSlide(t *testing.T) {
	uc := &stubUseCase{}
	r := newRouter(t, uc)

	w := do(r, http.MethodPut, "/api/admin/slides/"+slideID, `{"image":"a.jpg","heading":"Sale"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, slideID, uc.updated.ID)

	w = do(r, http.MethodPut, "/api/admin/slides/"+missingID, `{"image":"a.jpg","heading":"Sale"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Slide not found")
}

func TestUpdateSlideMalformedID(t *testing.T) {
	uc := &stubUseCase{}
	w := do(newRouter(t, uc), http.MethodPut, "/api/admin/slides/s1", `{"image":"a.jpg","heading":"Sale"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Slide not found")
	assert.Nil(t, uc.updated, "malformed ids never reach the use case")

	w = do(newRouter(t, uc), http.MethodDelete, "/api/admin/slides/s1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
