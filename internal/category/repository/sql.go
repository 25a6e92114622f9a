package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/database"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
)

// SQLRepository works against both postgres and sqlite; queries are written
// with named or "?" parameters and rebound for the driver.
type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

var _ category.Repository = (*SQLRepository)(nil)

func (r *SQLRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (name, created_at)
        VALUES (:name, :created_at)
        RETURNING id
    `
	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return err
	}
	defer nstmt.Close()

	if err := nstmt.GetContext(ctx, &c.ID, c); err != nil {
		if database.IsUniqueViolation(err) {
			return category.ErrAlreadyExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT id, name, created_at FROM categories ORDER BY id ASC`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *SQLRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT id FROM categories WHERE id IN (?) ORDER BY id ASC`, ids)
	if err != nil {
		return nil, err
	}

	var existing []int64
	if err := r.DB.SelectContext(ctx, &existing, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	return existing, nil
}
