package server

import (
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	catHandler "github.com/fekuna/omnipos-catalog-service/internal/category/handler"
	catRepo "github.com/fekuna/omnipos-catalog-service/internal/category/repository"
	catUC "github.com/fekuna/omnipos-catalog-service/internal/category/usecase"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	prodHandler "github.com/fekuna/omnipos-catalog-service/internal/product/handler"
	prodRepo "github.com/fekuna/omnipos-catalog-service/internal/product/repository"
	prodUC "github.com/fekuna/omnipos-catalog-service/internal/product/usecase"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type AppConfig struct {
	AllowedOrigins []string
	Cookie         auth.CookieConfig
}

// NewApp wires repositories, use cases and handlers over db.
func NewApp(db *sqlx.DB, tokens *auth.TokenManager, cfg AppConfig, log logger.ZapLogger) *gin.Engine {
	categories := catRepo.NewSQLRepository(db)
	products := prodRepo.NewSQLRepository(db)

	categoryUC := catUC.NewCategoryUseCase(categories, log)
	productUC := prodUC.NewProductUseCase(products, categories, log)

	return NewRouter(RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		CookieName:     cfg.Cookie.Name,
		Tokens:         tokens,
	}, Handlers{
		Auth:     auth.NewHandler(tokens, cfg.Cookie, log),
		Category: catHandler.NewCategoryHandler(categoryUC, log),
		Product:  prodHandler.NewProductHandler(productUC, log),
	}, log)
}
