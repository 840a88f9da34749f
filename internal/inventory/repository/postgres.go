package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetStock(ctx context.Context, productID string, variantID *string) (*model.StockLevel, error) {
	if !model.IsID(productID) || (variantID != nil && !model.IsID(*variantID)) {
		return nil, nil
	}
	var level model.StockLevel
	var err error
	if variantID != nil {
		query := `
            SELECT product_id, id AS variant_id, stock AS quantity, updated_at
            FROM product_variants
            WHERE id = $1 AND product_id = $2
        `
		err = r.DB.GetContext(ctx, &level, query, *variantID, productID)
	} else {
		query := `
            SELECT id AS product_id, NULL AS variant_id, stock AS quantity, updated_at
            FROM products
            WHERE id = $1
        `
		err = r.DB.GetContext(ctx, &level, query, productID)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}

func (r *PGRepository) AdjustStockWithMovement(ctx context.Context, m *model.StockMovement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Update stock, guarded by the quantity the caller read
	var res sql.Result
	if m.VariantID != nil {
		res, err = tx.ExecContext(ctx, `
            UPDATE product_variants SET stock = $1, updated_at = $2
            WHERE id = $3 AND product_id = $4 AND stock = $5
        `, m.QuantityAfter, m.CreatedAt, *m.VariantID, m.ProductID, m.QuantityBefore)
	} else {
		res, err = tx.ExecContext(ctx, `
            UPDATE products SET stock = $1, updated_at = $2
            WHERE id = $3 AND stock = $4
        `, m.QuantityAfter, m.CreatedAt, m.ProductID, m.QuantityBefore)
	}
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrBusy
	}

	// 2. Log movement
	insertLogQuery := `
        INSERT INTO stock_movements (
            id, product_id, variant_id, movement_type, quantity_change,
            quantity_before, quantity_after, reference_type, reference_id,
            notes, created_by, created_at
        )
        VALUES (
            :id, :product_id, :variant_id, :movement_type, :quantity_change,
            :quantity_before, :quantity_after, :reference_type, :reference_id,
            :notes, :created_by, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertLogQuery, m); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error) {
	items := []model.StockMovement{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.VariantID != "" {
		conditions = append(conditions, "variant_id = :variant_id")
		args["variant_id"] = f.VariantID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countStmt, err := r.DB.PrepareNamedContext(ctx, "SELECT count(*) FROM stock_movements"+whereClause)
	if err != nil {
		return nil, 0, err
	}
	defer countStmt.Close()
	if err := countStmt.GetContext(ctx, &count, args); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM stock_movements" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &items, args); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}
