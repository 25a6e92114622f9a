package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

type Repository interface {
	// Create inserts p and one association per existing category ID in a
	// single transaction, filling p.ID. A duplicate name yields
	// ErrAlreadyExists; otherwise, when none of categoryIDs exist, nothing is
	// written and ErrCategoryNotFound is returned.
	Create(ctx context.Context, product *model.Product, categoryIDs []int64) error
	// FindByID returns nil, nil when no product has the given id.
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// Update writes name, price and updated_at. With replaceCategories the
	// product's associations are replaced by categoryIDs in the same transaction.
	Update(ctx context.Context, product *model.Product, replaceCategories bool, categoryIDs []int64) error
	// Delete removes the product and returns the row as it was, or nil, nil
	// when no product has the given id.
	Delete(ctx context.Context, id int64) (*model.Product, error)

	FindAssociations(ctx context.Context, categoryIDs []int64) ([]model.ProductCategory, error)
	FindRows(ctx context.Context, filter *dto.RowFilter) ([]model.ProductCategoryRow, error)
}

// CategoryChecker resolves which category IDs exist.
type CategoryChecker interface {
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
