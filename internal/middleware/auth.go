package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"health-tracker/internal/model"
	"health-tracker/pkg/response"
)

const (
	bearerPrefix = "Bearer "
	scopeKey     = "health.scope"
)

// Auth treats the bearer token as the caller's user id and stores the
// resulting scope on the context. There is no signature behind the token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		userID := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Auth: empty bearer token from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}

		SetScope(c, model.Scope{UserID: userID})
		c.Next()
	}
}

func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
