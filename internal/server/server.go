// Package server assembles the gin engine and runs the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	catHandler "github.com/fekuna/omnipos-catalog-service/internal/category/handler"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/middleware"
	prodHandler "github.com/fekuna/omnipos-catalog-service/internal/product/handler"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *auth.Handler
	Category *catHandler.CategoryHandler
	Product  *prodHandler.ProductHandler
}

type RouterConfig struct {
	AllowedOrigins []string
	CookieName     string
	Tokens         auth.Verifier
}

// NewRouter mounts /health and the /api routes. Everything under /api except
// the auth endpoints requires the session cookie.
func NewRouter(cfg RouterConfig, h Handlers, log logger.ZapLogger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.NoCache(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api")
	h.Auth.Register(api)

	protected := api.Group("", auth.Middleware(cfg.Tokens, cfg.CookieName, log))
	h.Category.Register(protected)
	h.Product.Register(protected)

	return r
}

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          logger.ZapLogger
}

func New(addr string, handler http.Handler, shutdownTimeout time.Duration, log logger.ZapLogger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("Server stopped")
	return nil
}
