package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/checkpass/checkpass-server/pkg/helpers"
	"github.com/checkpass/checkpass-server/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the Authorization bearer token and injects the user id into
// the Gin context. A missing header is 401; a bad or expired token is 403.
// Whether the user still exists is the handler's problem, not this one's.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Err(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			response.Err(c, http.StatusUnauthorized, "malformed authorization header")
			c.Abort()
			return
		}
		userID, err := jwt.Parse(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, helpers.ErrExpiredToken) {
				msg = "expired token"
			}
			response.Err(c, http.StatusForbidden, msg)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}
