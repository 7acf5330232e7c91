package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srcbookdev/mocha-users-service-sdk/errors"
	"github.com/srcbookdev/mocha-users-service-sdk/logger"
	"github.com/srcbookdev/mocha-users-service-sdk/server/middleware"
	"github.com/srcbookdev/mocha-users-service-sdk/users"
)

// SessionService is the slice of the users client the handlers need.
// *users.Client satisfies it.
type SessionService interface {
	middleware.SessionResolver
	GetOAuthRedirectURL(ctx context.Context, provider string) (string, error)
	ExchangeCodeForSessionToken(ctx context.Context, code string) (string, error)
	DeleteSession(ctx context.Context, sessionToken string)
}

// Handlers implements the same-origin session endpoints.
type Handlers struct {
	svc SessionService
	log *logger.Logger
}

// NewHandlers creates the endpoint handlers over a users service client.
func NewHandlers(svc SessionService) *Handlers {
	return &Handlers{
		svc: svc,
		log: logger.WithComponent("session-endpoints"),
	}
}

// GetOAuthRedirectURL responds with the identity provider URL the browser
// should navigate to.
func (h *Handlers) GetOAuthRedirectURL(c *gin.Context) {
	provider := c.Param("provider")
	url, err := h.svc.GetOAuthRedirectURL(c.Request.Context(), provider)
	if err != nil {
		h.log.Warn("redirect URL fetch failed", logger.ErrorFields("get_redirect_url", err))
		RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect_url": url})
}

type createSessionBody struct {
	Code string `json:"code"`
}

// CreateSession exchanges an authorization code for a session token and
// stores it in the session cookie.
func (h *Handlers) CreateSession(c *gin.Context) {
	var body createSessionBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Code == "" {
		RespondWithError(c, errors.MissingCode())
		return
	}

	token, err := h.svc.ExchangeCodeForSessionToken(c.Request.Context(), body.Code)
	if err != nil {
		h.log.Warn("code exchange failed", logger.ErrorFields("create_session", err))
		RespondWithError(c, err)
		return
	}

	SetSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCurrentUser responds with the authenticated user. It runs behind
// SessionAuth, which already resolved the session.
func (h *Handlers) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondWithError(c, errors.Unauthorized(""))
		return
	}
	RespondOK(c, user)
}

// Logout revokes the session upstream when a cookie is present, then clears
// the cookie. Revocation failure never blocks the logout: the cookie is
// cleared regardless.
func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(users.SessionCookieName); err == nil && token != "" {
		h.svc.DeleteSession(c.Request.Context(), token)
	}
	ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
