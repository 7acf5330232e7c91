package users

import "time"

// ProviderGoogle is the only OAuth provider the users service currently
// supports.
const ProviderGoogle = "google"

// SessionCookieName is the HTTP cookie that carries the session token
// between the browser and the backend.
const SessionCookieName = "mocha_session_token"

var supportedProviders = map[string]bool{
	ProviderGoogle: true,
}

// IsSupportedProvider reports whether the users service can handle the
// given OAuth provider.
func IsSupportedProvider(provider string) bool {
	return supportedProviders[provider]
}

// User is the users service's view of an authenticated account. It is a
// read-only projection of remote state; the SDK never mutates it.
type User struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	GoogleSub      string         `json:"google_sub"`
	GoogleUserData GoogleUserData `json:"google_user_data"`
	LastSignedInAt time.Time      `json:"last_signed_in_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// GoogleUserData is the provider profile embedded in a User.
type GoogleUserData struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name,omitempty"`
	FamilyName    string `json:"family_name,omitempty"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
}

// Wire types for the users service API.

type redirectURLResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type createSessionRequest struct {
	Code string `json:"code"`
}

type createSessionResponse struct {
	SessionToken string `json:"session_token"`
}

type currentUserResponse struct {
	Data *User `json:"data"`
}
