// middlewares/ws_auth.go
package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/pkg/resp"
	"github.com/tekrabyte/waui-sub001/services"
)

// WSAuthMiddleware reads the token from ?token= first, then the bearer header.
func WSAuthMiddleware(secret string, sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			h := c.GetHeader("Authorization")
			if strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			c.Abort()
			return
		}
		attachSession(c, tokenStr, secret, sessions)
	}
}
