package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-storefront/internal/cache"
	"github.com/fekuna/omnipos-storefront/internal/fallback"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
	"github.com/fekuna/omnipos-storefront/internal/search"
	"github.com/fekuna/omnipos-storefront/internal/slug"
	"github.com/fekuna/omnipos-storefront/internal/variant"
)

const (
	indexName = "products"

	shopLimit     = 20
	featuredLimit = 12
	relatedLimit  = 4
)

type Config struct {
	FallbackEnabled bool
	CacheTTL        time.Duration
}

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	cfg    Config
	logger logger.ZapLogger
}

// NewProductUseCase wires the product reads and admin writes. cache and es are optional.
func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, cfg Config, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		cfg:    cfg,
		logger: log,
	}
}

func boolPtr(b bool) *bool { return &b }

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	f := *filters
	if f.IsActive == nil {
		f.IsActive = boolPtr(true)
	}
	if f.Limit <= 0 {
		f.Limit = shopLimit
	}
	return uc.listWithFallback(ctx, "list products", &f, func() []model.Product {
		if f.SearchQuery != "" {
			return fallback.Search(f.SearchQuery)
		}
		if f.CategorySlug != "" {
			return fallback.ByCategory(f.CategorySlug)
		}
		return fallback.Products()
	})
}

func (uc *productUseCase) ListFeatured(ctx context.Context) ([]model.Product, error) {
	f := &dto.ProductFilters{IsActive: boolPtr(true), IsFeatured: boolPtr(true), Limit: featuredLimit}
	return uc.listWithFallback(ctx, "list featured", f, func() []model.Product {
		return fallback.Featured(featuredLimit)
	})
}

func (uc *productUseCase) ListBestSellers(ctx context.Context) ([]model.Product, error) {
	f := &dto.ProductFilters{IsActive: boolPtr(true), IsBestSeller: boolPtr(true)}
	return uc.listWithFallback(ctx, "list best sellers", f, fallback.BestSellers)
}

func (uc *productUseCase) ListNewArrivals(ctx context.Context) ([]model.Product, error) {
	f := &dto.ProductFilters{IsActive: boolPtr(true), IsNew: boolPtr(true)}
	return uc.listWithFallback(ctx, "list new arrivals", f, fallback.NewArrivals)
}

func (uc *productUseCase) ListByCategory(ctx context.Context, categorySlug string) ([]model.Product, error) {
	f := &dto.ProductFilters{IsActive: boolPtr(true), CategorySlug: categorySlug}
	return uc.listWithFallback(ctx, "list by category", f, func() []model.Product {
		return fallback.ByCategory(categorySlug)
	})
}

func (uc *productUseCase) ListRelated(ctx context.Context, p *model.Product, limit int) ([]model.Product, error) {
	if p == nil || p.CategoryID == nil {
		return []model.Product{}, nil
	}
	if limit <= 0 {
		limit = relatedLimit
	}
	f := &dto.ProductFilters{IsActive: boolPtr(true), CategoryID: *p.CategoryID, ExcludeID: p.ID, Limit: limit}
	return uc.listWithFallback(ctx, "list related", f, func() []model.Product {
		return fallback.Related(p, limit)
	})
}

func (uc *productUseCase) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.ListProducts(ctx, &dto.ProductFilters{})
	}

	if uc.es != nil {
		products, err := uc.searchElastic(ctx, query)
		if err == nil && len(products) > 0 {
			return products, nil
		}
		if err != nil {
			// If ES fails, fall through to DB
			uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
		}
	}

	return uc.ListProducts(ctx, &dto.ProductFilters{SearchQuery: query})
}

func (uc *productUseCase) searchElastic(ctx context.Context, query string) ([]model.Product, error) {
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":     query,
							"fields":    []string{"name^3", "sku", "short_description", "description"},
							"fuzziness": "AUTO",
						},
					},
				},
				"filter": []map[string]interface{}{
					{"term": map[string]interface{}{"is_active": true}},
				},
			},
		},
		"size": shopLimit,
	}

	res, err := uc.es.Search(ctx, indexName, q)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			products = append(products, p)
		}
	}
	return products, nil
}

// listWithFallback serves f from the cache or the database. A failed or empty database
// read is answered from the static catalogue when fallback is enabled; only database
// results are cached.
func (uc *productUseCase) listWithFallback(ctx context.Context, op string, f *dto.ProductFilters, fb func() []model.Product) ([]model.Product, error) {
	cacheKey, keyErr := uc.generateCacheKey(f)
	if keyErr == nil && uc.cache != nil {
		var cached []model.Product
		if uc.cache.GetJSON(ctx, cacheKey, &cached) {
			return cached, nil
		}
	}

	products, err := uc.repo.FindAll(ctx, f)
	if err == nil && len(products) > 0 {
		if keyErr == nil && uc.cache != nil {
			if err := uc.cache.SetJSON(ctx, cacheKey, products, uc.cfg.CacheTTL); err != nil {
				uc.logger.Warn("failed to cache products", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		return products, nil
	}

	if !uc.cfg.FallbackEnabled {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return []model.Product{}, nil
	}

	uc.logger.Warn("serving fallback catalogue", zap.String("op", op), zap.Error(err))
	return fb(), nil
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

// invalidateProductCache drops product lists and category lists, whose counts depend on products.
func (uc *productUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	for _, pattern := range []string{"products:list:*", "categories:list:*"} {
		if err := uc.cache.DeletePattern(ctx, pattern); err != nil {
			uc.logger.Warn("failed to invalidate cache", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"slug": { "type": "keyword" },
				"sku": { "type": "keyword" },
				"short_description": { "type": "text" },
				"description": { "type": "text" },
				"price": { "type": "double" },
				"sale_price": { "type": "double" },
				"category_id": { "type": "keyword" },
				"is_active": { "type": "boolean" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, indexName, mapping)

	if err := uc.es.Index(ctx, indexName, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.String("product_id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) afterWrite(p *model.Product) {
	go uc.invalidateProductCache(context.Background())
	if p != nil {
		go uc.syncToElastic(context.Background(), p)
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err == nil && p != nil {
		return p, nil
	}
	if uc.cfg.FallbackEnabled {
		if fp := fallback.ProductByID(id); fp != nil {
			uc.logger.Warn("serving fallback product", zap.String("id", id), zap.Error(err))
			return fp, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return nil, model.ErrNotFound
}

func (uc *productUseCase) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	p, err := uc.repo.FindBySlug(ctx, slug)
	if err == nil && p != nil {
		return p, nil
	}
	if uc.cfg.FallbackEnabled {
		if fp := fallback.ProductBySlug(slug); fp != nil {
			uc.logger.Warn("serving fallback product", zap.String("slug", slug), zap.Error(err))
			return fp, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return nil, model.ErrNotFound
}

func (uc *productUseCase) ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	variants, err := uc.repo.ListVariants(ctx, productID)
	if err == nil && len(variants) > 0 {
		return variants, nil
	}
	// A stored product without variants sells from its own stock; only products
	// served from the fallback catalogue get the fallback size run.
	if uc.cfg.FallbackEnabled && (err != nil || fallback.ProductByID(productID) != nil) {
		uc.logger.Warn("serving fallback variants", zap.String("product_id", productID), zap.Error(err))
		return fallback.Variants(productID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	return []model.ProductVariant{}, nil
}

func (uc *productUseCase) GetProductDetail(ctx context.Context, slug string) (*dto.ProductDetail, error) {
	p, err := uc.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	variants, err := uc.ListVariants(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	related, err := uc.ListRelated(ctx, p, relatedLimit)
	if err != nil {
		// Related products are decoration; the page still renders without them.
		uc.logger.Warn("failed to load related products", zap.String("product_id", p.ID), zap.Error(err))
		related = []model.Product{}
	}

	return &dto.ProductDetail{
		Product:  p,
		Variants: variants,
		View:     NewSelectionView(p, variants, variant.Initial(variants)),
		Related:  related,
	}, nil
}

func (uc *productUseCase) ApplySelection(ctx context.Context, slug string, input *dto.SelectionInput) (*dto.SelectionView, error) {
	p, err := uc.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	variants, err := uc.ListVariants(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	current := variant.Selection{}
	if input.VariantID != "" {
		v := variant.FindByID(variants, input.VariantID)
		if v == nil {
			return nil, fmt.Errorf("%w: unknown variant %s", model.ErrInvalidInput, input.VariantID)
		}
		// A variant deactivated since the page loaded is dropped, not priced.
		if v.IsActive {
			current = variant.NewSelection(v)
		}
	}

	view := NewSelectionView(p, variants, current.Apply(variants, input.Action))
	return &view, nil
}

// NewSelectionView prices sel against p: the list price plus the variant adjustment, and the
// adjusted regular price when the product is on sale.
func NewSelectionView(p *model.Product, variants []model.ProductVariant, sel variant.Selection) dto.SelectionView {
	stock := variant.EffectiveStock(p, sel.Variant)
	view := dto.SelectionView{
		Selection:    sel,
		SizeOptions:  sel.SizeOptions(variants),
		ColorOptions: sel.ColorOptions(variants),
		Price:        variant.EffectivePrice(p.ListPrice(), sel.Variant),
		Stock:        stock,
		InStock:      stock > 0,
		Complete:     sel.Complete(variants),
	}
	if p.OnSale() {
		regular := variant.EffectivePrice(p.Price, sel.Variant)
		view.RegularPrice = &regular
	}
	return view
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
	}
	if err := uc.applyInput(ctx, p, input); err != nil {
		return nil, err
	}

	variants := buildVariants(p, input.Variants, now)
	p.HasVariants = len(variants) > 0

	if err := uc.repo.Create(ctx, p, variants); err != nil {
		return nil, err
	}

	uc.afterWrite(p)
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrNotFound
	}

	if err := uc.applyInput(ctx, p, &input.CreateProductInput); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()

	var variants []model.ProductVariant
	if input.Variants != nil {
		variants = buildVariants(p, input.Variants, p.UpdatedAt)
		p.HasVariants = len(variants) > 0
	}

	if err := uc.repo.Update(ctx, p, variants); err != nil {
		return nil, err
	}

	uc.afterWrite(p)
	return p, nil
}

// applyInput copies input onto p after checking images and SKU/slug uniqueness.
func (uc *productUseCase) applyInput(ctx context.Context, p *model.Product, input *dto.CreateProductInput) error {
	if len(input.Images) == 0 {
		return fmt.Errorf("%w: at least one image is required", model.ErrInvalidInput)
	}

	s := input.Slug
	if s == "" {
		s = slug.Make(input.Name)
	}
	if s == "" {
		return fmt.Errorf("%w: slug cannot be derived from name", model.ErrInvalidInput)
	}

	unique, err := uc.repo.IsSKUUnique(ctx, input.SKU, p.ID)
	if err != nil {
		return err
	}
	if !unique {
		return model.ErrSKUTaken
	}
	unique, err = uc.repo.IsSlugUnique(ctx, s, p.ID)
	if err != nil {
		return err
	}
	if !unique {
		return model.ErrSlugTaken
	}

	p.Name = strings.TrimSpace(input.Name)
	p.Slug = s
	p.Price = input.Price
	p.SalePrice = nil
	if input.SalePrice != nil && *input.SalePrice > 0 {
		sale := *input.SalePrice
		p.SalePrice = &sale
	}
	p.CategoryID = nil
	if input.CategoryID != nil && *input.CategoryID != "" {
		catID := *input.CategoryID
		p.CategoryID = &catID
	}
	p.Stock = input.Stock
	p.SKU = input.SKU
	p.ShortDescription = optional(input.ShortDescription)
	p.Description = optional(input.Description)
	p.Images = append([]string{}, input.Images...)
	p.GalleryImages = append([]string{}, input.GalleryImages...)
	p.Specifications = append([]string{}, input.Specifications...)
	p.IsNew = input.IsNew
	p.IsBestSeller = input.IsBestSeller
	p.IsFeatured = input.IsFeatured
	p.IsActive = input.IsActive == nil || *input.IsActive
	return nil
}

// buildVariants turns form rows into variants of p. Rows without a size or color are dropped.
func buildVariants(p *model.Product, rows []dto.VariantInput, now time.Time) []model.ProductVariant {
	variants := []model.ProductVariant{}
	for _, row := range rows {
		size, color := optionalPtr(row.Size), optionalPtr(row.Color)
		if size == nil && color == nil {
			continue
		}
		variants = append(variants, model.ProductVariant{
			BaseModel:       model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			ProductID:       p.ID,
			Size:            size,
			Color:           color,
			SKU:             slug.VariantSKU(p.SKU, size, color),
			PriceAdjustment: row.PriceAdjustment,
			Stock:           row.Stock,
			IsActive:        row.IsActive == nil || *row.IsActive,
		})
	}
	return variants
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // Already deleted
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateProductCache(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), indexName, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.String("product_id", id), zap.Error(err))
			}
		}()
	}
	return nil
}

func (uc *productUseCase) AddVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error) {
	p, err := uc.repo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrNotFound
	}

	size, color := optionalPtr(input.Size), optionalPtr(input.Color)
	if size == nil && color == nil {
		return nil, fmt.Errorf("%w: size or color is required", model.ErrInvalidInput)
	}
	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		sku = slug.VariantSKU(p.SKU, size, color)
	}

	now := time.Now()
	v := &model.ProductVariant{
		BaseModel:       model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ProductID:       p.ID,
		Size:            size,
		Color:           color,
		SKU:             sku,
		PriceAdjustment: input.PriceAdjustment,
		Stock:           input.Stock,
		IsActive:        true,
	}
	if err := uc.repo.CreateVariant(ctx, v); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background())
	return v, nil
}

func (uc *productUseCase) UpdateVariant(ctx context.Context, input *dto.UpdateVariantInput) (*model.ProductVariant, error) {
	v, err := uc.findOwnedVariant(ctx, input.ProductID, input.ID)
	if err != nil {
		return nil, err
	}

	size, color := optionalPtr(input.Size), optionalPtr(input.Color)
	if size == nil && color == nil {
		return nil, fmt.Errorf("%w: size or color is required", model.ErrInvalidInput)
	}
	v.Size = size
	v.Color = color
	if sku := strings.TrimSpace(input.SKU); sku != "" {
		v.SKU = sku
	}
	v.PriceAdjustment = input.PriceAdjustment
	v.Stock = input.Stock
	if input.IsActive != nil {
		v.IsActive = *input.IsActive
	}
	v.UpdatedAt = time.Now()

	if err := uc.repo.UpdateVariant(ctx, v); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background())
	return v, nil
}

func (uc *productUseCase) DeleteVariant(ctx context.Context, productID, variantID string) error {
	if _, err := uc.findOwnedVariant(ctx, productID, variantID); err != nil {
		return err
	}
	if err := uc.repo.DeleteVariant(ctx, variantID); err != nil {
		return err
	}

	go uc.invalidateProductCache(context.Background())
	return nil
}

func (uc *productUseCase) findOwnedVariant(ctx context.Context, productID, variantID string) (*model.ProductVariant, error) {
	v, err := uc.repo.FindVariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if v == nil || v.ProductID != productID {
		return nil, model.ErrNotFound
	}
	return v, nil
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func optionalPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return optional(*s)
}
