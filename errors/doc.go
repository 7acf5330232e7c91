// Package errors provides unified error handling for the users-service SDK.
// It implements structured error types with machine-readable codes, HTTP
// status mapping, and a JSON response envelope shared by the backend
// endpoints and the authentication middleware.
package errors
