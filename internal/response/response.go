// Package response writes the {message, status, data} envelope every endpoint
// answers with.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Envelope struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    any    `json:"data"`
}

type ErrorEnvelope struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{Message: message, Status: StatusSuccess, Data: data})
}

// Error aborts the chain so later middleware and handlers do not run.
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorEnvelope{Message: message, Status: StatusError})
}

func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
