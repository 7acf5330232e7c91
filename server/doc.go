// Package server provides the backend HTTP surface a host application
// mounts to expose the users service to its frontend.
//
// Routes registers the same-origin endpoints the client-side session
// coordinator consumes:
//
//	GET  /api/oauth/:provider/redirect_url
//	POST /api/sessions
//	GET  /api/users/me
//	GET  /api/logout
//
// The session token travels in an httpOnly cookie; SetSessionCookie and
// ClearSessionCookie own its attributes. Server wraps a Gin engine with the
// SDK middleware stack for hosts that want a runnable server rather than
// just the routes.
package server
