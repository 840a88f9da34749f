package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/cache"
	"github.com/fekuna/omnipos-storefront/internal/fallback"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/slider"
	"github.com/fekuna/omnipos-storefront/internal/slider/dto"
)

type Config struct {
	FallbackEnabled bool
	CacheTTL        time.Duration
}

type slideUseCase struct {
	repo   slider.Repository
	cache  *cache.RedisClient
	cfg    Config
	logger logger.ZapLogger
}

func NewSlideUseCase(repo slider.Repository, cache *cache.RedisClient, cfg Config, log logger.ZapLogger) slider.UseCase {
	return &slideUseCase{
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: log,
	}
}

func (uc *slideUseCase) ListSlides(ctx context.Context, activeOnly bool) ([]model.SliderSlide, error) {
	key := fmt.Sprintf("slides:list:%t", activeOnly)
	if uc.cache != nil {
		var cached []model.SliderSlide
		if uc.cache.GetJSON(ctx, key, &cached) {
			return cached, nil
		}
	}

	slides, err := uc.repo.FindAll(ctx, activeOnly)
	if err == nil && len(slides) > 0 {
		if uc.cache != nil {
			if err := uc.cache.SetJSON(ctx, key, slides, uc.cfg.CacheTTL); err != nil {
				uc.logger.Warn("failed to cache slides", zap.Error(err))
			}
		}
		return slides, nil
	}

	if !uc.cfg.FallbackEnabled {
		if err != nil {
			return nil, fmt.Errorf("list slides: %w", err)
		}
		return []model.SliderSlide{}, nil
	}
	uc.logger.Warn("serving fallback slides", zap.Error(err))
	return fallback.Slides(), nil
}

func (uc *slideUseCase) CreateSlide(ctx context.Context, input *dto.CreateSlideInput) (*model.SliderSlide, error) {
	now := time.Now()
	s := &model.SliderSlide{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
	}
	applyInput(s, input)

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	go uc.invalidateCache(context.Background())
	return s, nil
}

func (uc *slideUseCase) UpdateSlide(ctx context.Context, input *dto.UpdateSlideInput) (*model.SliderSlide, error) {
	s, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, model.ErrNotFound
	}

	applyInput(s, &input.CreateSlideInput)
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	go uc.invalidateCache(context.Background())
	return s, nil
}

func applyInput(s *model.SliderSlide, input *dto.CreateSlideInput) {
	s.Image = input.Image
	s.Heading = input.Heading
	s.Text = input.Text
	s.CTAText = input.CTAText
	s.CTALink = input.CTALink
	s.SortOrder = input.SortOrder
	s.IsActive = input.IsActive == nil || *input.IsActive
}

func (uc *slideUseCase) DeleteSlide(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	go uc.invalidateCache(context.Background())
	return nil
}

func (uc *slideUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, "slides:list:*"); err != nil {
		uc.logger.Warn("failed to invalidate slide cache", zap.Error(err))
	}
}
