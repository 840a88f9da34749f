package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/fallback"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/review"
	"github.com/fekuna/omnipos-storefront/internal/review/dto"
)

type reviewUseCase struct {
	repo            review.Repository
	fallbackEnabled bool
	logger          logger.ZapLogger
}

func NewReviewUseCase(repo review.Repository, fallbackEnabled bool, log logger.ZapLogger) review.UseCase {
	return &reviewUseCase{
		repo:            repo,
		fallbackEnabled: fallbackEnabled,
		logger:          log,
	}
}

func (uc *reviewUseCase) ListReviews(ctx context.Context, approvedOnly bool) ([]model.Review, error) {
	reviews, err := uc.repo.FindAll(ctx, "", approvedOnly)
	if err == nil && len(reviews) > 0 {
		return reviews, nil
	}
	if !uc.fallbackEnabled {
		if err != nil {
			return nil, fmt.Errorf("list reviews: %w", err)
		}
		return []model.Review{}, nil
	}
	uc.logger.Warn("serving fallback reviews", zap.Error(err))
	return fallback.Reviews(), nil
}

// ListProductReviews has no fallback: sample testimonials do not belong to any product.
func (uc *reviewUseCase) ListProductReviews(ctx context.Context, productID string, approvedOnly bool) ([]model.Review, error) {
	if productID == "" {
		return []model.Review{}, nil
	}
	reviews, err := uc.repo.FindAll(ctx, productID, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("list product reviews: %w", err)
	}
	return reviews, nil
}

func (uc *reviewUseCase) SubmitReview(ctx context.Context, input *dto.SubmitReviewInput) (*model.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", model.ErrInvalidInput)
	}

	rv := &model.Review{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(input.Name),
		Rating:     input.Rating,
		Text:       strings.TrimSpace(input.Text),
		IsApproved: false,
		CreatedAt:  time.Now(),
	}
	if input.ProductID != nil && *input.ProductID != "" {
		pid := *input.ProductID
		rv.ProductID = &pid
	}

	if err := uc.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (uc *reviewUseCase) ApproveReview(ctx context.Context, id string) error {
	return uc.repo.Approve(ctx, id)
}

func (uc *reviewUseCase) DeleteReview(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
