package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/review/dto"
	"github.com/fekuna/omnipos-storefront/internal/review/usecase"
)

type fakeRepo struct {
	reviews []model.Review
	err     error
}

func (r *fakeRepo) Create(_ context.Context, rv *model.Review) error {
	r.reviews = append(r.reviews, *rv)
	return nil
}

func (r *fakeRepo) FindAll(_ context.Context, productID string, approvedOnly bool) ([]model.Review, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []model.Review{}
	for _, rv := range r.reviews {
		if productID != "" && (rv.ProductID == nil || *rv.ProductID != productID) {
			continue
		}
		if approvedOnly && !rv.IsApproved {
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

func (r *fakeRepo) Approve(_ context.Context, id string) error {
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews[i].IsApproved = true
			return nil
		}
	}
	return model.ErrNotFound
}

func (r *fakeRepo) Delete(context.Context, string) error { return nil }

func TestListReviews_Fallback(t *testing.T) {
	uc := usecase.NewReviewUseCase(&fakeRepo{err: errors.New("down")}, true, logger.NewNop())

	reviews, err := uc.ListReviews(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	_, err = uc.ListProductReviews(context.Background(), "p1", true)
	assert.Error(t, err, "product reviews never fall back")
}

func TestSubmitAndApprove(t *testing.T) {
	repo := &fakeRepo{}
	uc := usecase.NewReviewUseCase(repo, false, logger.NewNop())
	ctx := context.Background()
	pid := "p1"

	rv, err := uc.SubmitReview(ctx, &dto.SubmitReviewInput{ProductID: &pid, Name: " Rina ", Rating: 5, Text: "Lovely fabric"})
	require.NoError(t, err)
	assert.False(t, rv.IsApproved)
	assert.Equal(t, "Rina", rv.Name)

	visible, err := uc.ListProductReviews(ctx, "p1", true)
	require.NoError(t, err)
	assert.Empty(t, visible)

	require.NoError(t, uc.ApproveReview(ctx, rv.ID))
	visible, err = uc.ListProductReviews(ctx, "p1", true)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	assert.ErrorIs(t, uc.ApproveReview(ctx, "missing"), model.ErrNotFound)

	_, err = uc.SubmitReview(ctx, &dto.SubmitReviewInput{Name: "x", Rating: 6, Text: "y"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
