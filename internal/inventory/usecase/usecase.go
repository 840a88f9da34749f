package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/cache"
	"github.com/fekuna/omnipos-storefront/internal/inventory"
	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

const (
	lockTTL      = 5 * time.Second
	lockAttempts = 3
	lockBackoff  = 100 * time.Millisecond
)

// StockCache is the slice of the Redis client used here: a lock around each
// adjustment and invalidation of product listings that embed stock.
type StockCache interface {
	cache.Locker
	DeletePattern(ctx context.Context, pattern string) error
}

type inventoryUseCase struct {
	repo   inventory.Repository
	cache  StockCache
	logger logger.ZapLogger
}

// NewInventoryUseCase accepts a nil cache; adjustments then rely on the
// repository's compare-and-set alone.
func NewInventoryUseCase(repo inventory.Repository, cache StockCache, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *inventoryUseCase) GetStock(ctx context.Context, productID string, variantID *string) (*model.StockLevel, error) {
	level, err := uc.repo.GetStock(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, model.ErrNotFound
	}
	return level, nil
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockLevel, error) {
	if input.QuantityChange == 0 {
		return nil, fmt.Errorf("%w: quantity change must not be zero", model.ErrInvalidInput)
	}

	// 0. Acquire lock, one per product or variant
	lockKey := "lock:inventory:" + input.ProductID
	if input.VariantID != nil {
		lockKey += ":" + *input.VariantID
	}
	lockValue := uuid.New().String()
	if uc.cache != nil {
		if err := uc.acquire(ctx, lockKey, lockValue); err != nil {
			return nil, err
		}
		defer func() {
			if err := uc.cache.ReleaseLock(context.Background(), lockKey, lockValue); err != nil {
				uc.logger.Warn("failed to release inventory lock", zap.String("key", lockKey), zap.Error(err))
			}
		}()
	}

	movementType := input.MovementType
	if movementType == "" {
		movementType = model.MovementAdjustment
	}

	// 1. Read and write, re-reading when a concurrent writer moved the stock first
	var (
		level *model.StockLevel
		err   error
	)
	for attempt := 1; ; attempt++ {
		level, err = uc.applyAdjustment(ctx, input, movementType)
		if err == nil || !errors.Is(err, model.ErrBusy) || attempt >= lockAttempts {
			break
		}
		uc.logger.Warn("stock changed concurrently, retrying",
			zap.String("product_id", input.ProductID),
			zap.Int("attempt", attempt),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockBackoff):
		}
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("stock adjusted",
		zap.String("product_id", input.ProductID),
		zap.Int("quantity", level.Quantity),
		zap.Int("change", input.QuantityChange),
		zap.String("movement_type", movementType),
	)

	if uc.cache != nil {
		go func() {
			if err := uc.cache.DeletePattern(context.Background(), "products:list:*"); err != nil {
				uc.logger.Warn("failed to invalidate product cache", zap.Error(err))
			}
		}()
	}

	return level, nil
}

// applyAdjustment reads the current stock and writes the new value with its movement row.
// model.ErrBusy means the stock changed between the read and the write.
func (uc *inventoryUseCase) applyAdjustment(ctx context.Context, input *dto.AdjustStockInput, movementType string) (*model.StockLevel, error) {
	level, err := uc.repo.GetStock(ctx, input.ProductID, input.VariantID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, model.ErrNotFound
	}

	now := time.Now()
	before := level.Quantity
	after := before + input.QuantityChange
	if after < 0 {
		return nil, fmt.Errorf("%w: %d on hand, %d requested", model.ErrInsufficientStock, before, -input.QuantityChange)
	}

	movement := &model.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		VariantID:      input.VariantID,
		MovementType:   movementType,
		QuantityChange: input.QuantityChange,
		QuantityBefore: before,
		QuantityAfter:  after,
		ReferenceType:  optional(input.ReferenceType),
		ReferenceID:    optional(input.ReferenceID),
		Notes:          input.Reason,
		CreatedBy:      optional(input.UserID),
		CreatedAt:      now,
	}
	if err := uc.repo.AdjustStockWithMovement(ctx, movement); err != nil {
		return nil, err
	}

	level.Quantity = after
	level.UpdatedAt = now
	return level, nil
}

func (uc *inventoryUseCase) acquire(ctx context.Context, key, value string) error {
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.cache.AcquireLock(ctx, key, value, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockBackoff):
		}
	}
	return fmt.Errorf("%w: stock for %s is being updated", model.ErrBusy, key)
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

func optional(s string) *string {
	if s == "" || s == "unknown" {
		return nil
	}
	return &s
}
