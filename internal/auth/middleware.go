package auth

import (
	"context"
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type subjectKey struct{}

// Verifier is satisfied by *TokenManager.
type Verifier interface {
	Verify(token string) (string, error)
}

// Middleware rejects requests without the session cookie (401) or with one
// that does not verify (403). Accepted subjects are stored in the request
// context.
func Middleware(v Verifier, cookieName string, log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		subject, err := v.Verify(token)
		if err != nil {
			log.Debug("rejected session token", zap.Error(err))
			response.Error(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Request = c.Request.WithContext(WithSubject(c.Request.Context(), subject))
		c.Next()
	}
}

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	return subject, ok && subject != ""
}
