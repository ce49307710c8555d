package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError to the gin response. Server-side failures
// are logged with the wrapped cause; the client only sees the sanitized
// message.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		slog.Error("server error", "code", err.Code, "domain", err.Domain, "error", err.Error())
	}
	c.AbortWithStatusJSON(err.HTTPCode, ErrorResponse{Error: err})
}
