package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Caller errors (checked before any I/O)
const (
	// ErrCodeUnsupportedProvider indicates an OAuth provider outside the supported set.
	ErrCodeUnsupportedProvider ErrorCode = "UNSUPPORTED_PROVIDER"
	// ErrCodeMissingCode indicates the OAuth authorization code is missing.
	ErrCodeMissingCode ErrorCode = "MISSING_CODE"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Authentication errors
const (
	// ErrCodeUnauthorized indicates the request carries no session credential.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeInvalidToken indicates the session token did not resolve to a user.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// Remote directory errors
const (
	// ErrCodeUpstream indicates the remote users service returned a non-success status.
	ErrCodeUpstream ErrorCode = "UPSTREAM_ERROR"
	// ErrCodeConnectionFailed indicates a failed connection to the remote users service.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeUpstream:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
