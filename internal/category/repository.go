package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	// Create inserts c and fills c.ID. A duplicate name yields ErrAlreadyExists.
	Create(ctx context.Context, category *model.Category) error
	FindAll(ctx context.Context) ([]model.Category, error)
	// ExistingIDs returns the subset of ids that reference a category, ascending.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
