package review

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
)

type Repository interface {
	Create(ctx context.Context, review *model.Review) error
	// FindAll lists reviews newest first; an empty productID matches every review.
	FindAll(ctx context.Context, productID string, approvedOnly bool) ([]model.Review, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
