package middleware

import (
	"net/http"

	"ansh-apparels/libs"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware sets the CORS headers on every response and answers
// preflight requests itself.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for key, value := range libs.CORSHeaders(allowedOrigins, c.GetHeader("Origin")) {
			c.Header(key, value)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
