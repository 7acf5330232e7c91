package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srcbookdev/mocha-users-service-sdk/users"
)

// SessionCookieMaxAge is how long the session cookie lives: 60 days, in
// seconds. The users service enforces actual session expiry; the cookie
// just has to outlive it.
const SessionCookieMaxAge = 60 * 24 * 60 * 60

// SetSessionCookie attaches the session token to the response as an
// httpOnly, Secure, SameSite=None cookie scoped to the whole site.
// SameSite=None keeps the OAuth redirect round-trip working when the
// frontend and backend are on different sites.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(users.SessionCookieName, token, SessionCookieMaxAge, "/", "", true, true)
}

// ClearSessionCookie expires the session cookie by re-setting it with
// max-age 0 and identical scoping attributes.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(users.SessionCookieName, "", -1, "/", "", true, true)
}
