package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/services"
)

const sessionKey = "session"

func SetSession(c *gin.Context, s *services.Session) {
	c.Set(sessionKey, s)
}

// CurrentSession returns the session the auth middleware attached, or nil.
func CurrentSession(c *gin.Context) *services.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*services.Session); ok {
			return s
		}
	}
	return nil
}
