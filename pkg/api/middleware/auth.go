package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/cadagent-org/cadagent/pkg/api/dto"
	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// Auth rejects requests whose API key header does not match the
// configured key. An empty configured key disables the check.
func Auth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		got := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid api key"})
			return
		}
		c.Next()
	}
}
