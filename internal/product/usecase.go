package product

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListFeatured(ctx context.Context) ([]model.Product, error)
	ListBestSellers(ctx context.Context) ([]model.Product, error)
	ListNewArrivals(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, categorySlug string) ([]model.Product, error)
	ListRelated(ctx context.Context, p *model.Product, limit int) ([]model.Product, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)

	// Variant ops
	ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error)
	GetProductDetail(ctx context.Context, slug string) (*dto.ProductDetail, error)
	ApplySelection(ctx context.Context, slug string, input *dto.SelectionInput) (*dto.SelectionView, error)

	// Admin
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AddVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, input *dto.UpdateVariantInput) (*model.ProductVariant, error)
	DeleteVariant(ctx context.Context, productID, variantID string) error
}
