package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srcbookdev/mocha-users-service-sdk/errors"
	"github.com/srcbookdev/mocha-users-service-sdk/users"
)

// SessionResolver resolves a session token to a user, or nil when the token
// is invalid or expired. *users.Client satisfies it.
type SessionResolver interface {
	GetCurrentUser(ctx context.Context, sessionToken string) *users.User
}

// SessionAuth returns a Gin middleware that validates the session cookie on
// every request. A missing cookie is rejected with 401 before any remote
// call; a cookie that does not resolve upstream is rejected with 401 after
// one round-trip. The resolved user is stored in both the Gin context and
// the request context for downstream handlers.
//
// The gate is stateless: no caching, no session renewal, one resolution per
// protected request.
func SessionAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(users.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.Unauthorized("").ToResponse())
			return
		}

		user := resolver.GetCurrentUser(c.Request.Context(), token)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.InvalidToken().ToResponse())
			return
		}

		c.Set(users.GinContextKey, user)
		c.Request = c.Request.WithContext(users.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user stored by SessionAuth.
func CurrentUser(c *gin.Context) (*users.User, bool) {
	v, ok := c.Get(users.GinContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*users.User)
	return user, ok
}
