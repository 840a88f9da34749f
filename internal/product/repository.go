package product

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
)

type Repository interface {
	// Create inserts the product and its variants in one transaction.
	Create(ctx context.Context, product *model.Product, variants []model.ProductVariant) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	// Update saves the product; when variants is non-nil the stored variants are deleted and
	// variants inserted in the same transaction.
	Update(ctx context.Context, product *model.Product, variants []model.ProductVariant) error
	Delete(ctx context.Context, id string) error

	IsSKUUnique(ctx context.Context, sku, excludeID string) (bool, error)
	IsSlugUnique(ctx context.Context, slug, excludeID string) (bool, error)

	ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error)
	FindVariantByID(ctx context.Context, id string) (*model.ProductVariant, error)
	CreateVariant(ctx context.Context, v *model.ProductVariant) error
	UpdateVariant(ctx context.Context, v *model.ProductVariant) error
	DeleteVariant(ctx context.Context, id string) error
}
