// Package middleware provides Gin middleware for applications built on the
// users-service SDK.
//
//   - SessionAuth: per-request session validation against the users service
//   - RequestID: request ID generation and propagation
//   - Recovery: panic recovery with structured logging
//   - CORS: credentialed cross-origin support for the cookie-based session
//   - RequestLogger: request/response logging with duration tracking
package middleware
