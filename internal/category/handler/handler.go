package handler

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/category/add", h.CreateCategory)
	rg.GET("/categories", h.ListCategories)
}

// CreateCategory handles POST /api/category/add
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input dto.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, category.ErrNameRequired):
			response.Error(c, http.StatusBadRequest, "Name is required")
		case errors.Is(err, category.ErrAlreadyExists):
			response.Error(c, http.StatusBadRequest, "Category already exists")
		default:
			h.logger.Error("failed to create category", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.Success(c, http.StatusCreated, "Category added successfully", []any{cat})
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Success(c, http.StatusOK, "Categories fetched successfully", cats)
}
