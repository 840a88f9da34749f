package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-storefront/internal/model"
)

const slideColumns = `id, image, heading, text, cta_text, cta_link, sort_order, is_active, created_at, updated_at`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.SliderSlide) error {
	query := `
        INSERT INTO slider_slides (` + slideColumns + `)
        VALUES (:id, :image, :heading, :text, :cta_text, :cta_link, :sort_order, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.SliderSlide, error) {
	if !model.IsID(id) {
		return nil, nil
	}
	var slide model.SliderSlide
	err := r.DB.GetContext(ctx, &slide, `SELECT `+slideColumns+` FROM slider_slides WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &slide, nil
}

func (r *PGRepository) FindAll(ctx context.Context, activeOnly bool) ([]model.SliderSlide, error) {
	slides := []model.SliderSlide{}
	query := `SELECT ` + slideColumns + ` FROM slider_slides`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	if err := r.DB.SelectContext(ctx, &slides, query); err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.SliderSlide) error {
	query := `
        UPDATE slider_slides
        SET image = :image,
            heading = :heading,
            text = :text,
            cta_text = :cta_text,
            cta_link = :cta_link,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, s)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM slider_slides WHERE id = $1", id)
	return err
}
