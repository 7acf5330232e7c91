package users

import (
	"context"
	"fmt"

	"github.com/srcbookdev/mocha-users-service-sdk/config"
	"github.com/srcbookdev/mocha-users-service-sdk/errors"
	"github.com/srcbookdev/mocha-users-service-sdk/httpclient"
	"github.com/srcbookdev/mocha-users-service-sdk/logger"
)

// Client calls the remote users service. It holds no session state of its
// own; every operation is a single request/response round-trip.
type Client struct {
	http *httpclient.Client
	log  *logger.Logger
}

// New creates a users service client from SDK configuration.
func New(cfg *config.Config) (*Client, error) {
	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.APIURL,
		Auth:    httpclient.APIKeyAuth(cfg.APIKey),
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		http: hc,
		log:  logger.WithComponent("users-client"),
	}, nil
}

// NewWithHTTPClient creates a users service client over a prebuilt HTTP
// client. Useful for tests and custom transports.
func NewWithHTTPClient(hc *httpclient.Client) *Client {
	return &Client{
		http: hc,
		log:  logger.WithComponent("users-client"),
	}
}

// GetOAuthRedirectURL returns the identity provider URL to send the browser
// to. Unsupported providers fail before any network call.
func (c *Client) GetOAuthRedirectURL(ctx context.Context, provider string) (string, error) {
	if !IsSupportedProvider(provider) {
		return "", errors.UnsupportedProvider(provider)
	}

	resp, err := httpclient.Get[redirectURLResponse](c.http, ctx, fmt.Sprintf("/oauth/%s/redirect_url", provider))
	if err != nil {
		return "", err
	}
	return resp.Data.RedirectURL, nil
}

// ExchangeCodeForSessionToken exchanges a one-time OAuth authorization code
// for a session token. Codes are single-use upstream, so a failed exchange
// is never retried here.
func (c *Client) ExchangeCodeForSessionToken(ctx context.Context, code string) (string, error) {
	resp, err := httpclient.Post[createSessionResponse](c.http, ctx, "/sessions", createSessionRequest{Code: code})
	if err != nil {
		return "", err
	}
	return resp.Data.SessionToken, nil
}

// GetCurrentUser resolves a session token to its user. An invalid, expired,
// or unresolvable token is a normal outcome, not an error: the result is nil
// for any non-success response or transport failure. This is the per-request
// validation path and must never interrupt the caller's control flow.
func (c *Client) GetCurrentUser(ctx context.Context, sessionToken string) *User {
	resp, err := httpclient.Get[currentUserResponse](c.http, ctx, "/users/me",
		httpclient.WithRequestAuth(httpclient.BearerAuth(sessionToken)))
	if err != nil {
		c.log.Debug("session did not resolve", logger.ErrorFields("get_current_user", err))
		return nil
	}
	return resp.Data.Data
}

// DeleteSession revokes a session token upstream. Revocation is best-effort:
// the caller clears local state regardless, so failures are logged and
// swallowed.
func (c *Client) DeleteSession(ctx context.Context, sessionToken string) {
	_, err := httpclient.Delete[struct{}](c.http, ctx, "/sessions",
		httpclient.WithRequestAuth(httpclient.BearerAuth(sessionToken)))
	if err != nil {
		c.log.Warn("session revocation failed", logger.ErrorFields("delete_session", err))
	}
}
