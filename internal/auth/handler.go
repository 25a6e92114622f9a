package auth

import (
	"net/http"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

type Handler struct {
	tokens *TokenManager
	cookie CookieConfig
	logger logger.ZapLogger
}

func NewHandler(tokens *TokenManager, cookie CookieConfig, log logger.ZapLogger) *Handler {
	return &Handler{
		tokens: tokens,
		cookie: cookie,
		logger: log,
	}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/token", h.IssueToken)
	rg.POST("/auth/logout", h.Logout)
}

type tokenData struct {
	ExpiresAt time.Time `json:"expiresAt"`
}

// IssueToken handles POST /api/auth/token
func (h *Handler) IssueToken(c *gin.Context) {
	token, expiresAt, err := h.tokens.Issue()
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.setCookie(c, token, int(h.tokens.TTL().Seconds()))
	response.Success(c, http.StatusOK, "Token issued successfully", tokenData{ExpiresAt: expiresAt.UTC()})
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
