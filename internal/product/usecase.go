package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.ProductWithCategories, error)
	GetProduct(ctx context.Context, id int64) (*model.ProductWithCategories, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductWithCategories, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.ProductWithCategories, error)
	DeleteProduct(ctx context.Context, id int64) (*model.Product, error)
}
