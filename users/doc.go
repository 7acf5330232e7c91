// Package users is the client for the remote Mocha users service, the
// hosted directory that owns user identity and session validity.
//
// The Client exposes the four session-lifecycle operations:
//
//   - GetOAuthRedirectURL: where to send the browser to start the OAuth flow
//   - ExchangeCodeForSessionToken: turn a one-time authorization code into a
//     durable session token
//   - GetCurrentUser: resolve a session token to a user, or nil
//   - DeleteSession: best-effort revocation of a session token
//
// Session tokens are opaque bearer strings. They are forwarded, never parsed.
package users
