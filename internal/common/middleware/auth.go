package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const adminKey = "admin"

// LocalAdmin is the identity given to every request when authentication is
// disabled.
const LocalAdmin = "local"

// Authenticator resolves request credentials to an admin identity.
type Authenticator interface {
	Authenticate(bearerToken, initData string) (string, error)
}

// RequireAdmin rejects requests without valid admin credentials: a bearer
// token or Telegram init data in the init_data header. A nil authenticator
// treats every request as LocalAdmin.
func RequireAdmin(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authn == nil {
			c.Set(adminKey, LocalAdmin)
			c.Next()
			return
		}

		admin, err := authn.Authenticate(bearerToken(c), c.GetHeader("init_data"))
		if err != nil {
			RespondError(c, err)
			return
		}

		c.Set(adminKey, admin)
		c.Next()
	}
}

// OptionalAdmin records the admin identity when the request carries valid
// credentials and lets anonymous requests through.
func OptionalAdmin(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authn == nil {
			c.Set(adminKey, LocalAdmin)
			c.Next()
			return
		}

		bearer, initData := bearerToken(c), c.GetHeader("init_data")
		if bearer != "" || initData != "" {
			if admin, err := authn.Authenticate(bearer, initData); err == nil {
				c.Set(adminKey, admin)
			}
		}
		c.Next()
	}
}

// GetAdmin returns the identity stored by RequireAdmin or OptionalAdmin, or
// "" for anonymous requests.
func GetAdmin(c *gin.Context) string {
	return c.GetString(adminKey)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
