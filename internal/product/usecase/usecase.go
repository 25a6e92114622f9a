package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo       product.Repository
	categories product.CategoryChecker
	logger     logger.ZapLogger
	now        func() time.Time
}

func NewProductUseCase(repo product.Repository, categories product.CategoryChecker, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:       repo,
		categories: categories,
		logger:     log,
		now:        time.Now,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.ProductWithCategories, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, product.ErrNameRequired
	}
	if !validPrice(input.Price) {
		return nil, product.ErrInvalidPrice
	}
	categoryIDs := product.UniqueIDs(input.CategoryIDs)

	now := uc.now().UTC()
	p := &model.Product{
		BaseModel: model.BaseModel{CreatedAt: now},
		Name:      name,
		Price:     input.Price,
		UpdatedAt: now,
	}

	// The unique index on name decides first; unknown categories are only
	// reported for a name that is free.
	if err := uc.repo.Create(ctx, p, categoryIDs); err != nil {
		switch {
		case errors.Is(err, product.ErrAlreadyExists):
			uc.logger.Debug("product already exists", zap.String("name", name))
		case errors.Is(err, product.ErrCategoryNotFound):
			uc.logger.Debug("no requested category exists", zap.Int64s("category_ids", categoryIDs))
		}
		return nil, err
	}

	uc.logger.Info("product created",
		zap.Int64("product_id", p.ID),
		zap.Int64s("category_ids", categoryIDs),
	)
	return uc.GetProduct(ctx, p.ID)
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.ProductWithCategories, error) {
	rows, err := uc.repo.FindRows(ctx, &dto.RowFilter{ProductIDs: []int64{id}})
	if err != nil {
		return nil, err
	}
	products := product.Assemble(rows)
	if len(products) == 0 {
		return nil, product.ErrNotFound
	}
	return &products[0], nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductWithCategories, error) {
	var productIDs []int64

	if required := product.UniqueIDs(filters.CategoryIDs); len(required) > 0 {
		pairs, err := uc.repo.FindAssociations(ctx, required)
		if err != nil {
			return nil, err
		}
		productIDs = product.MatchAll(pairs, required)
		if len(productIDs) == 0 {
			return []model.ProductWithCategories{}, nil
		}
	}

	rows, err := uc.repo.FindRows(ctx, &dto.RowFilter{
		ProductIDs: productIDs,
		Name:       strings.TrimSpace(filters.Name),
	})
	if err != nil {
		return nil, err
	}
	return product.Assemble(rows), nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.ProductWithCategories, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			p.Name = name
		}
	}
	if input.Price != nil {
		if !validPrice(*input.Price) {
			return nil, product.ErrInvalidPrice
		}
		p.Price = *input.Price
	}
	p.UpdatedAt = uc.now().UTC()

	replace := len(input.CategoryIDs) > 0
	var categoryIDs []int64
	if replace {
		// Full replacement with whichever of the given ids exist.
		categoryIDs, err = uc.categories.ExistingIDs(ctx, product.UniqueIDs(input.CategoryIDs))
		if err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, p, replace, categoryIDs); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated",
		zap.Int64("product_id", p.ID),
		zap.Bool("categories_replaced", replace),
		zap.Int64s("category_ids", categoryIDs),
	)
	return uc.GetProduct(ctx, p.ID)
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	uc.logger.Info("product deleted", zap.Int64("product_id", id))
	return p, nil
}

func validPrice(price int64) bool {
	return price >= 0 && price <= product.MaxPrice
}
