package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.POST("/product/add", h.CreateProduct)
	rg.PUT("/product", h.UpdateProduct)
	rg.DELETE("/product", h.DeleteProduct)
}

// ListProducts handles GET /api/products?categoryIds=[1,4]&name=phone
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filters := &dto.ProductFilters{Name: c.Query("name")}

	if raw := strings.TrimSpace(c.Query("categoryIds")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filters.CategoryIDs); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid categoryIds")
			return
		}
	}

	products, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Success(c, http.StatusOK, "Products fetched successfully", products)
}

// CreateProduct handles POST /api/product/add
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		h.writeError(c, "failed to create product", err)
		return
	}

	response.Success(c, http.StatusCreated, "Product added successfully", p)
}

// UpdateProduct handles PUT /api/product
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	// No product carries a missing or non-positive id.
	if input.ID <= 0 {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), &input)
	if err != nil {
		h.writeError(c, "failed to update product", err)
		return
	}

	response.Success(c, http.StatusOK, "Product updated successfully", p)
}

// DeleteProduct handles DELETE /api/product?id=1
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	p, err := h.uc.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "failed to delete product", err)
		return
	}

	response.Success(c, http.StatusOK, "Product deleted successfully", []*model.Product{p})
}

func (h *ProductHandler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, product.ErrNameRequired):
		response.Error(c, http.StatusBadRequest, "Name is required")
	case errors.Is(err, product.ErrInvalidPrice):
		response.Error(c, http.StatusBadRequest, "Invalid price")
	case errors.Is(err, product.ErrAlreadyExists):
		response.Error(c, http.StatusBadRequest, "Product already exists")
	case errors.Is(err, product.ErrCategoryNotFound):
		response.Error(c, http.StatusBadRequest, "Category not found")
	case errors.Is(err, product.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Product not found")
	default:
		h.logger.Error(msg, zap.Error(err))
		response.InternalError(c)
	}
}
