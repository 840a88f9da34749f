package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/category/dto"
	"github.com/fekuna/omnipos-storefront/internal/category/usecase"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

type fakeRepo struct {
	items map[string]*model.Category
	err   error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{items: map[string]*model.Category{}} }

func (r *fakeRepo) Create(_ context.Context, c *model.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*model.Category, error) {
	if c, ok := r.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, r.err
}

func (r *fakeRepo) FindBySlug(_ context.Context, slug string) (*model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.items {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindAll(_ context.Context, f *dto.CategoryFilters) ([]model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []model.Category{}
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, c *model.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) IsSlugUnique(_ context.Context, slug, excludeID string) (bool, error) {
	for _, c := range r.items {
		if c.Slug == slug && c.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

func newUseCase(repo *fakeRepo, fb bool) category.UseCase {
	return usecase.NewCategoryUseCase(repo, nil, usecase.Config{FallbackEnabled: fb}, logger.NewNop())
}

func TestListCategories(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("db down")

	got, err := newUseCase(repo, true).ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 6)

	_, err = newUseCase(repo, false).ListCategories(context.Background())
	assert.Error(t, err)

	got, err = newUseCase(newFakeRepo(), false).ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetCategoryBySlug(t *testing.T) {
	uc := newUseCase(newFakeRepo(), true)

	c, err := uc.GetCategoryBySlug(context.Background(), "formal-wear")
	require.NoError(t, err)
	assert.Equal(t, "Formal Wear", c.Name)

	_, err = uc.GetCategoryBySlug(context.Background(), "unknown")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCreateAndUpdateCategory(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo, false)
	ctx := context.Background()

	c, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Women's Fashion"})
	require.NoError(t, err)
	assert.Equal(t, "women-s-fashion", c.Slug)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Womens", Slug: "women-s-fashion"})
	assert.ErrorIs(t, err, model.ErrSlugTaken)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "!!!"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	updated, err := uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{
		ID:                  c.ID,
		CreateCategoryInput: dto.CreateCategoryInput{Name: "Women", Slug: "women-s-fashion", Image: "w.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Women", updated.Name)
	assert.Equal(t, "w.jpg", repo.items[c.ID].Image)

	_, err = uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: "missing"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
