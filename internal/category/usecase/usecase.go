package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/cache"
	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/category/dto"
	"github.com/fekuna/omnipos-storefront/internal/fallback"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/slug"
)

const listCacheKey = "categories:list:all"

type Config struct {
	FallbackEnabled bool
	CacheTTL        time.Duration
}

type categoryUseCase struct {
	repo   category.Repository
	cache  *cache.RedisClient
	cfg    Config
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, cache *cache.RedisClient, cfg Config, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	if uc.cache != nil {
		var cached []model.Category
		if uc.cache.GetJSON(ctx, listCacheKey, &cached) {
			return cached, nil
		}
	}

	categories, err := uc.repo.FindAll(ctx, &dto.CategoryFilters{WithCounts: true})
	if err == nil && len(categories) > 0 {
		if uc.cache != nil {
			if err := uc.cache.SetJSON(ctx, listCacheKey, categories, uc.cfg.CacheTTL); err != nil {
				uc.logger.Warn("failed to cache categories", zap.Error(err))
			}
		}
		return categories, nil
	}

	if !uc.cfg.FallbackEnabled {
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		return []model.Category{}, nil
	}
	uc.logger.Warn("serving fallback categories", zap.Error(err))
	return fallback.Categories(), nil
}

func (uc *categoryUseCase) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	c, err := uc.repo.FindBySlug(ctx, slug)
	if err == nil && c != nil {
		return c, nil
	}
	if uc.cfg.FallbackEnabled {
		if fc := fallback.CategoryBySlug(slug); fc != nil {
			uc.logger.Warn("serving fallback category", zap.String("slug", slug), zap.Error(err))
			return fc, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return nil, model.ErrNotFound
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := uc.applyInput(ctx, cat, input); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	go uc.invalidateCache(context.Background())
	return cat, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, model.ErrNotFound
	}

	if err := uc.applyInput(ctx, cat, &input.CreateCategoryInput); err != nil {
		return nil, err
	}
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	go uc.invalidateCache(context.Background())
	return cat, nil
}

func (uc *categoryUseCase) applyInput(ctx context.Context, cat *model.Category, input *dto.CreateCategoryInput) error {
	s := input.Slug
	if s == "" {
		s = slug.Make(input.Name)
	}
	if s == "" {
		return fmt.Errorf("%w: slug cannot be derived from name", model.ErrInvalidInput)
	}

	unique, err := uc.repo.IsSlugUnique(ctx, s, cat.ID)
	if err != nil {
		return err
	}
	if !unique {
		return model.ErrSlugTaken
	}

	cat.Name = strings.TrimSpace(input.Name)
	cat.Slug = s
	cat.Image = strings.TrimSpace(input.Image)
	return nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	go uc.invalidateCache(context.Background())
	return nil
}

// invalidateCache also drops product lists, which embed category data.
func (uc *categoryUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	for _, pattern := range []string{"categories:list:*", "products:list:*"} {
		if err := uc.cache.DeletePattern(ctx, pattern); err != nil {
			uc.logger.Warn("failed to invalidate cache", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}
