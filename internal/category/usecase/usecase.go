package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/category/naming"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.CategoryRef, error) {
	name, ok := naming.ToStorage(input.Name)
	if !ok {
		return nil, category.ErrNameRequired
	}

	cat := &model.Category{
		BaseModel: model.BaseModel{CreatedAt: uc.now().UTC()},
		Name:      name,
	}

	// No existence pre-check: the unique index decides.
	if err := uc.repo.Create(ctx, cat); err != nil {
		if errors.Is(err, category.ErrAlreadyExists) {
			uc.logger.Debug("category already exists", zap.String("name", name))
		}
		return nil, err
	}

	uc.logger.Info("category created", zap.Int64("category_id", cat.ID), zap.String("name", name))
	return &model.CategoryRef{ID: cat.ID, Name: naming.MustDisplay(cat.Name)}, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.CategoryRef, error) {
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]model.CategoryRef, len(categories))
	for i, c := range categories {
		refs[i] = model.CategoryRef{ID: c.ID, Name: naming.MustDisplay(c.Name)}
	}
	return refs, nil
}
