package users

import "context"

// GinContextKey is the key the authentication middleware stores the
// resolved *User under in the gin context.
const GinContextKey = "mocha_user"

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var userKey = contextKey{}

// WithUser stores the resolved user in the request context.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// FromContext retrieves the resolved user from the request context.
// Returns nil, false when no user is attached.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userKey).(*User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}
