package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"topbookstore-backend/internal/shared/response"
	"topbookstore-backend/pkg/logger"
)

// Recovery converts a handler panic into a 500 envelope instead of a
// dropped connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered", fmt.Errorf("%s %s request_id=%s: %v",
					c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), rec))

				response.Fail(c, http.StatusInternalServerError, "SYS_001", "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
