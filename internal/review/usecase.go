package review

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/review/dto"
)

type UseCase interface {
	ListReviews(ctx context.Context, approvedOnly bool) ([]model.Review, error)
	ListProductReviews(ctx context.Context, productID string, approvedOnly bool) ([]model.Review, error)
	SubmitReview(ctx context.Context, input *dto.SubmitReviewInput) (*model.Review, error)
	ApproveReview(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, id string) error
}
