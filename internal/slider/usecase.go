package slider

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/slider/dto"
)

type UseCase interface {
	// ListSlides returns slides by sort order. The homepage asks for active ones only.
	ListSlides(ctx context.Context, activeOnly bool) ([]model.SliderSlide, error)
	CreateSlide(ctx context.Context, input *dto.CreateSlideInput) (*model.SliderSlide, error)
	UpdateSlide(ctx context.Context, input *dto.UpdateSlideInput) (*model.SliderSlide, error)
	DeleteSlide(ctx context.Context, id string) error
}
