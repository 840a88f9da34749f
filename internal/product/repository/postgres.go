package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/product/dto"
)

// productColumns selects every stored column plus the computed has_variants flag.
const productColumns = `
	p.id, p.name, p.slug, p.price, p.sale_price, p.category_id, p.stock, p.sku,
	p.short_description, p.description, p.images, p.gallery_images, p.specifications,
	p.is_new, p.is_best_seller, p.is_featured, p.is_active, p.created_at, p.updated_at,
	EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = p.id) AS has_variants`

const variantColumns = `id, product_id, size, color, sku, price_adjustment, stock, is_active, created_at, updated_at`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product, variants []model.ProductVariant) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO products (
            id, name, slug, price, sale_price, category_id, stock, sku,
            short_description, description, images, gallery_images, specifications,
            is_new, is_best_seller, is_featured, is_active, created_at, updated_at
        )
        VALUES (
            :id, :name, :slug, :price, :sale_price, :category_id, :stock, :sku,
            :short_description, :description, :images, :gallery_images, :specifications,
            :is_new, :is_best_seller, :is_featured, :is_active, :created_at, :updated_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
		return err
	}
	if err := insertVariants(ctx, tx, variants); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	if !model.IsID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "p.id = $1", id)
}

func (r *PGRepository) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return r.findOne(ctx, "p.slug = $1", slug)
}

func (r *PGRepository) findOne(ctx context.Context, cond string, arg interface{}) (*model.Product, error) {
	var product model.Product
	query := fmt.Sprintf("SELECT %s FROM products p WHERE %s LIMIT 1", productColumns, cond)
	err := r.DB.GetContext(ctx, &product, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	products := []model.Product{product}
	if err := r.attachCategories(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	products := []model.Product{}
	if f.CategoryID != "" && !model.IsID(f.CategoryID) {
		return products, nil
	}

	conditions := []string{}
	args := map[string]interface{}{}

	if f.IsActive != nil {
		conditions = append(conditions, "p.is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.IsNew != nil {
		conditions = append(conditions, "p.is_new = :is_new")
		args["is_new"] = *f.IsNew
	}
	if f.IsBestSeller != nil {
		conditions = append(conditions, "p.is_best_seller = :is_best_seller")
		args["is_best_seller"] = *f.IsBestSeller
	}
	if f.IsFeatured != nil {
		conditions = append(conditions, "p.is_featured = :is_featured")
		args["is_featured"] = *f.IsFeatured
	}
	if f.CategoryID != "" {
		conditions = append(conditions, "p.category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.CategorySlug != "" {
		conditions = append(conditions, "p.category_id IN (SELECT c.id FROM categories c WHERE c.slug = :category_slug)")
		args["category_slug"] = f.CategorySlug
	}
	if model.IsID(f.ExcludeID) {
		conditions = append(conditions, "p.id <> :exclude_id")
		args["exclude_id"] = f.ExcludeID
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(p.name ILIKE :search OR p.sku ILIKE :search OR p.short_description ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := "p.created_at DESC"
	if f.SortBy != "" {
		// Whitelisted to keep user input out of the statement.
		switch f.SortBy {
		case "name":
			orderBy = "p.name"
		case "price":
			orderBy = "COALESCE(p.sale_price, p.price)"
		default:
			orderBy = "p.created_at"
		}
		if strings.ToLower(f.SortOrder) == "asc" {
			orderBy += " ASC"
		} else {
			orderBy += " DESC"
		}
	}

	query := fmt.Sprintf("SELECT %s FROM products p%s ORDER BY %s", productColumns, whereClause, orderBy)
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// attachCategories loads the categories referenced by products in one query.
func (r *PGRepository) attachCategories(ctx context.Context, products []model.Product) error {
	ids := []string{}
	seen := map[string]struct{}{}
	for _, p := range products {
		if p.CategoryID == nil {
			continue
		}
		if _, ok := seen[*p.CategoryID]; !ok {
			seen[*p.CategoryID] = struct{}{}
			ids = append(ids, *p.CategoryID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`SELECT id, name, slug, image, created_at, updated_at FROM categories WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	var cats []model.Category
	if err := r.DB.SelectContext(ctx, &cats, r.DB.Rebind(query), args...); err != nil {
		return err
	}

	byID := make(map[string]*model.Category, len(cats))
	for i := range cats {
		byID[cats[i].ID] = &cats[i]
	}
	for i := range products {
		if products[i].CategoryID != nil {
			products[i].Category = byID[*products[i].CategoryID]
		}
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product, variants []model.ProductVariant) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE products
        SET name = :name,
            slug = :slug,
            price = :price,
            sale_price = :sale_price,
            category_id = :category_id,
            stock = :stock,
            sku = :sku,
            short_description = :short_description,
            description = :description,
            images = :images,
            gallery_images = :gallery_images,
            specifications = :specifications,
            is_new = :is_new,
            is_best_seller = :is_best_seller,
            is_featured = :is_featured,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := tx.NamedExecContext(ctx, query, p)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrNotFound
	}

	if variants != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM product_variants WHERE product_id = $1", p.ID); err != nil {
			return err
		}
		if err := insertVariants(ctx, tx, variants); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertVariants(ctx context.Context, tx *sqlx.Tx, variants []model.ProductVariant) error {
	if len(variants) == 0 {
		return nil
	}
	query := `
        INSERT INTO product_variants (` + variantColumns + `)
        VALUES (:id, :product_id, :size, :color, :sku, :price_adjustment, :stock, :is_active, :created_at, :updated_at)
    `
	_, err := tx.NamedExecContext(ctx, query, variants)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

func (r *PGRepository) IsSKUUnique(ctx context.Context, sku, excludeID string) (bool, error) {
	return r.isUnique(ctx, "sku", sku, excludeID)
}

func (r *PGRepository) IsSlugUnique(ctx context.Context, slug, excludeID string) (bool, error) {
	return r.isUnique(ctx, "slug", slug, excludeID)
}

// isUnique is only called with the fixed column names above.
func (r *PGRepository) isUnique(ctx context.Context, column, value, excludeID string) (bool, error) {
	var count int
	query := fmt.Sprintf(`SELECT count(*) FROM products WHERE %s = $1`, column)
	args := []interface{}{value}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	err := r.DB.GetContext(ctx, &count, query, args...)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *PGRepository) ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	variants := []model.ProductVariant{}
	if !model.IsID(productID) {
		return variants, nil
	}
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE product_id = $1 ORDER BY created_at ASC`
	if err := r.DB.SelectContext(ctx, &variants, query, productID); err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *PGRepository) FindVariantByID(ctx context.Context, id string) (*model.ProductVariant, error) {
	if !model.IsID(id) {
		return nil, nil
	}
	var v model.ProductVariant
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &v, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *PGRepository) CreateVariant(ctx context.Context, v *model.ProductVariant) error {
	query := `
        INSERT INTO product_variants (` + variantColumns + `)
        VALUES (:id, :product_id, :size, :color, :sku, :price_adjustment, :stock, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return err
}

func (r *PGRepository) UpdateVariant(ctx context.Context, v *model.ProductVariant) error {
	query := `
        UPDATE product_variants
        SET size = :size,
            color = :color,
            sku = :sku,
            price_adjustment = :price_adjustment,
            stock = :stock,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND product_id = :product_id
    `
	res, err := r.DB.NamedExecContext(ctx, query, v)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PGRepository) DeleteVariant(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM product_variants WHERE id = $1", id)
	return err
}
