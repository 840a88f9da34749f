package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-storefront/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, rv *model.Review) error {
	query := `
        INSERT INTO reviews (id, product_id, name, rating, text, is_approved, created_at)
        VALUES (:id, :product_id, :name, :rating, :text, :is_approved, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, rv)
	return err
}

func (r *PGRepository) FindAll(ctx context.Context, productID string, approvedOnly bool) ([]model.Review, error) {
	reviews := []model.Review{}
	if productID != "" && !model.IsID(productID) {
		return reviews, nil
	}

	query := `SELECT id, product_id, name, rating, text, is_approved, created_at FROM reviews WHERE TRUE`
	args := []interface{}{}
	if productID != "" {
		args = append(args, productID)
		query += ` AND product_id = ?`
	}
	if approvedOnly {
		query += ` AND is_approved = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	if err := r.DB.SelectContext(ctx, &reviews, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *PGRepository) Approve(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE reviews SET is_approved = TRUE WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id = $1", id)
	return err
}
