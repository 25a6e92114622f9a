package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/database"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

var _ product.Repository = (*SQLRepository)(nil)

const productColumns = `id, name, price, created_at, updated_at`

// Create inserts p first so a duplicate name is reported before anything else,
// then attaches the subset of categoryIDs that exist. With none existing the
// transaction is rolled back with ErrCategoryNotFound.
func (r *SQLRepository) Create(ctx context.Context, p *model.Product, categoryIDs []int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO products (name, price, created_at, updated_at)
        VALUES (:name, :price, :created_at, :updated_at)
        RETURNING id
    `
	nstmt, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		return err
	}
	defer nstmt.Close()

	if err := nstmt.GetContext(ctx, &p.ID, p); err != nil {
		if database.IsUniqueViolation(err) {
			return product.ErrAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}

	existing, err := existingCategoryIDs(ctx, tx, categoryIDs)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return product.ErrCategoryNotFound
	}

	if err := insertAssociations(ctx, tx, p.ID, existing); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := r.DB.Rebind(`SELECT ` + productColumns + ` FROM products WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLRepository) Update(ctx context.Context, p *model.Product, replaceCategories bool, categoryIDs []int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE products
        SET name = :name,
            price = :price,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := tx.NamedExecContext(ctx, query, p)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return product.ErrAlreadyExists
		}
		return fmt.Errorf("update product: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return product.ErrNotFound
	}

	if replaceCategories {
		del := tx.Rebind(`DELETE FROM product_categories WHERE product_id = ?`)
		if _, err := tx.ExecContext(ctx, del, p.ID); err != nil {
			return fmt.Errorf("clear product categories: %w", err)
		}
		if err := insertAssociations(ctx, tx, p.ID, categoryIDs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete relies on ON DELETE CASCADE to drop the product's associations.
func (r *SQLRepository) Delete(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := r.DB.Rebind(`DELETE FROM products WHERE id = ? RETURNING ` + productColumns)
	if err := r.DB.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLRepository) FindAssociations(ctx context.Context, categoryIDs []int64) ([]model.ProductCategory, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
        SELECT product_id, category_id
        FROM product_categories
        WHERE category_id IN (?)
    `, categoryIDs)
	if err != nil {
		return nil, err
	}

	var pairs []model.ProductCategory
	if err := r.DB.SelectContext(ctx, &pairs, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	return pairs, nil
}

// FindRows returns products left-joined with their categories, newest product
// first and categories by id within a product.
func (r *SQLRepository) FindRows(ctx context.Context, f *dto.RowFilter) ([]model.ProductCategoryRow, error) {
	conditions := []string{}
	args := []interface{}{}

	if f.ProductIDs != nil {
		conditions = append(conditions, "p.id IN (?)")
		args = append(args, f.ProductIDs)
	}
	if f.Name != "" {
		lower := database.LowerFunc(r.DB.DriverName())
		conditions = append(conditions, lower+`(p.name) LIKE `+lower+`(?) ESCAPE '\'`)
		args = append(args, "%"+escapeLike(f.Name)+"%")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `
        SELECT p.id AS product_id,
               p.name AS product_name,
               p.price AS price,
               c.id AS category_id,
               c.name AS category_name
        FROM products p
        LEFT JOIN product_categories pc ON pc.product_id = p.id
        LEFT JOIN categories c ON c.id = pc.category_id` + whereClause + `
        ORDER BY p.created_at DESC, p.id DESC, c.id ASC`

	if f.ProductIDs != nil {
		if len(f.ProductIDs) == 0 {
			return nil, nil
		}
		var err error
		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return nil, err
		}
	}

	var rows []model.ProductCategoryRow
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func existingCategoryIDs(ctx context.Context, tx *sqlx.Tx, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT id FROM categories WHERE id IN (?) ORDER BY id ASC`, ids)
	if err != nil {
		return nil, err
	}

	var existing []int64
	if err := tx.SelectContext(ctx, &existing, tx.Rebind(query), args...); err != nil {
		return nil, err
	}
	return existing, nil
}

func insertAssociations(ctx context.Context, tx *sqlx.Tx, productID int64, categoryIDs []int64) error {
	query := tx.Rebind(`INSERT INTO product_categories (product_id, category_id) VALUES (?, ?)`)
	for _, categoryID := range categoryIDs {
		if _, err := tx.ExecContext(ctx, query, productID, categoryID); err != nil {
			return fmt.Errorf("attach category %d: %w", categoryID, err)
		}
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
