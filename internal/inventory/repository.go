package inventory

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

type Repository interface {
	// GetStock returns nil when the product, or the variant under it, does not exist.
	GetStock(ctx context.Context, productID string, variantID *string) (*model.StockLevel, error)
	// AdjustStockWithMovement writes movement.QuantityAfter and logs the movement in one transaction.
	// It fails with model.ErrBusy when the stored quantity no longer equals movement.QuantityBefore.
	AdjustStockWithMovement(ctx context.Context, movement *model.StockMovement) error
	ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error)
}
