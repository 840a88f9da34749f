package slider

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
)

type Repository interface {
	Create(ctx context.Context, slide *model.SliderSlide) error
	FindByID(ctx context.Context, id string) (*model.SliderSlide, error)
	FindAll(ctx context.Context, activeOnly bool) ([]model.SliderSlide, error)
	Update(ctx context.Context, slide *model.SliderSlide) error
	Delete(ctx context.Context, id string) error
}
