// Package middleware provides platform-level Gin middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"disaster_backend/internal/api"
)

// RequireJSON rejects requests whose Content-Type is not JSON before the
// handler runs. The message text is part of the API contract.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "application/json") {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				api.ErrorResponse{Success: false, Message: "Request must be JSON"})
			return
		}
		c.Next()
	}
}
