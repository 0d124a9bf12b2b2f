package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/pkg/resp"
	"github.com/tekrabyte/waui-sub001/services"
	"github.com/tekrabyte/waui-sub001/utils"
)

// AuthMiddleware resolves the bearer token to an open terminal session.
func AuthMiddleware(secret string, sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		attachSession(c, strings.TrimPrefix(h, "Bearer "), secret, sessions)
	}
}

func attachSession(c *gin.Context, tokenStr, secret string, sessions *services.SessionManager) {
	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		resp.Unauthorized(c, "invalid token")
		c.Abort()
		return
	}

	s, err := sessions.Get(claims.SessionID)
	if err != nil {
		resp.Unauthorized(c, "session closed")
		c.Abort()
		return
	}

	utils.SetSession(c, s)
	c.Next()
}
