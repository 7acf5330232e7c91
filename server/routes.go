package server

import (
	"github.com/gin-gonic/gin"

	"github.com/srcbookdev/mocha-users-service-sdk/server/middleware"
)

// Routes registers the same-origin session endpoints under /api on the
// given router.
func Routes(r gin.IRouter, svc SessionService) {
	h := NewHandlers(svc)

	api := r.Group("/api")
	api.GET("/oauth/:provider/redirect_url", h.GetOAuthRedirectURL)
	api.POST("/sessions", h.CreateSession)
	api.GET("/users/me", middleware.SessionAuth(svc), h.GetCurrentUser)
	api.GET("/logout", h.Logout)
}
