package session

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/srcbookdev/mocha-users-service-sdk/errors"
	"github.com/srcbookdev/mocha-users-service-sdk/httpclient"
	"github.com/srcbookdev/mocha-users-service-sdk/logger"
	"github.com/srcbookdev/mocha-users-service-sdk/users"
)

// Status describes where the coordinator is in its lifecycle.
type Status string

const (
	// StatusUnresolved means no resolution attempt has settled yet.
	StatusUnresolved Status = "unresolved"
	// StatusResolving means a fetch is currently in flight.
	StatusResolving Status = "resolving"
	// StatusAuthenticated means the last settled resolution found a user.
	StatusAuthenticated Status = "authenticated"
	// StatusAnonymous means the last settled resolution found no user.
	StatusAnonymous Status = "anonymous"
)

// Config configures a Coordinator.
type Config struct {
	// BaseURL is the origin of the backend serving the /api session
	// endpoints, e.g. "https://app.example.com".
	BaseURL string

	// Navigate performs a full navigation to the identity provider.
	// Called by RedirectToLogin on success. Optional.
	Navigate func(url string)

	// Jar overrides the cookie jar. Defaults to an in-memory jar so the
	// session cookie round-trips like it would in a browser.
	Jar http.CookieJar
}

// exchangeAttempt is the settled (or settling) outcome of the one code
// exchange a coordinator will ever perform.
type exchangeAttempt struct {
	done chan struct{}
	err  error
}

// Coordinator owns local authentication state for one client process.
// All methods are safe for concurrent use.
type Coordinator struct {
	mu       sync.Mutex
	user     *users.User
	pending  bool
	fetching bool

	// fetchGroup coalesces overlapping FetchUser calls into one request.
	// The group clears its key on settle, so a call after completion
	// starts a fresh fetch.
	fetchGroup singleflight.Group

	// exchange is set on the first ExchangeCodeForSession call and never
	// cleared: the authorization code is single-use, so a second attempt
	// within the same lifetime must observe the first outcome, not retry.
	exchange *exchangeAttempt

	startOnce sync.Once

	http     *httpclient.Client
	navigate func(string)
	log      *logger.Logger
}

// New creates a Coordinator in the unresolved state.
func New(cfg Config) (*Coordinator, error) {
	jar := cfg.Jar
	if jar == nil {
		var err error
		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Jar:     jar,
	})
	if err != nil {
		return nil, err
	}

	return &Coordinator{
		pending:  true,
		http:     hc,
		navigate: cfg.Navigate,
		log:      logger.WithComponent("session-coordinator"),
	}, nil
}

// Start performs the initial user resolution. Safe to call from overlapping
// lifecycle events: only the first call fetches, and duplicate mounts that
// race the first fetch coalesce onto it.
func (c *Coordinator) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.FetchUser(ctx)
	})
}

// FetchUser resolves the current user through GET /api/users/me and stores
// the result. Overlapping calls share one in-flight request and observe the
// same outcome; a call made after the previous one settled starts fresh.
// Resolution failure is a normal outcome and yields a nil user.
func (c *Coordinator) FetchUser(ctx context.Context) *users.User {
	v, _, _ := c.fetchGroup.Do("current_user", func() (any, error) {
		c.mu.Lock()
		c.fetching = true
		c.mu.Unlock()

		user := c.requestCurrentUser(ctx)

		c.mu.Lock()
		c.user = user
		c.fetching = false
		// Pending means "we don't know yet". Any settled attempt clears
		// it, whether or not it found a user.
		c.pending = false
		c.mu.Unlock()

		return user, nil
	})

	user, _ := v.(*users.User)
	return user
}

// RedirectToLogin fetches the identity provider URL and hands it to the
// configured Navigate hook. Fire-and-forget: failures are logged and never
// propagate to the caller.
func (c *Coordinator) RedirectToLogin(ctx context.Context) {
	resp, err := httpclient.Get[redirectURLResponse](c.http, ctx, "/api/oauth/google/redirect_url")
	if err != nil {
		c.log.Error("redirect URL fetch failed", logger.ErrorFields("redirect_to_login", err))
		return
	}
	if c.navigate != nil {
		c.navigate(resp.Data.RedirectURL)
	}
}

// ExchangeCodeForSession reads the authorization code from pageURL's query
// parameters and exchanges it for a session via POST /api/sessions.
//
// Calling it on a page without a code is a caller-contract violation and
// fails synchronously with MISSING_CODE before any network activity.
//
// The exchange runs at most once per coordinator lifetime. Concurrent calls
// wait for the in-flight attempt; calls after settlement, success or
// failure, return the original outcome rather than retrying the
// already-consumed code. A successful exchange triggers FetchUser to
// refresh local state.
func (c *Coordinator) ExchangeCodeForSession(ctx context.Context, pageURL string) error {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return errors.InvalidInput("page_url", err.Error())
	}
	code := parsed.Query().Get("code")
	if code == "" {
		return errors.MissingCode()
	}

	c.mu.Lock()
	if c.exchange != nil {
		attempt := c.exchange
		c.mu.Unlock()
		<-attempt.done
		return attempt.err
	}
	attempt := &exchangeAttempt{done: make(chan struct{})}
	c.exchange = attempt
	c.mu.Unlock()

	_, attempt.err = httpclient.Post[exchangeResponse](c.http, ctx, "/api/sessions", exchangeRequest{Code: code})
	if attempt.err == nil {
		c.FetchUser(ctx)
	} else {
		c.log.Error("code exchange failed", logger.ErrorFields("exchange_code", attempt.err))
	}
	close(attempt.done)

	return attempt.err
}

// Logout clears local state to "no user" before the network call, then
// notifies the backend. Logout is always locally effective: a failed remote
// call is logged but does not restore the previous user.
func (c *Coordinator) Logout(ctx context.Context) {
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()

	if _, err := httpclient.Get[logoutResponse](c.http, ctx, "/api/logout"); err != nil {
		c.log.Warn("logout request failed", logger.ErrorFields("logout", err))
	}
}

// User returns the current user, or nil when anonymous or unresolved.
func (c *Coordinator) User() *users.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// IsPending reports whether the initial resolution has not settled yet.
func (c *Coordinator) IsPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// IsFetching reports whether a user fetch is currently in flight.
func (c *Coordinator) IsFetching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetching
}

// Status derives the lifecycle state from the coordinator's flags.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.fetching:
		return StatusResolving
	case c.pending:
		return StatusUnresolved
	case c.user != nil:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

// requestCurrentUser resolves the session cookie to a user. Any failure
// (transport, non-2xx, malformed body) is absence, never an error.
func (c *Coordinator) requestCurrentUser(ctx context.Context) *users.User {
	resp, err := httpclient.Get[currentUserResponse](c.http, ctx, "/api/users/me")
	if err != nil {
		c.log.Debug("user fetch did not resolve", logger.ErrorFields("fetch_user", err))
		return nil
	}
	return resp.Data.Data
}

// Wire types for the same-origin endpoints.

type redirectURLResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type exchangeRequest struct {
	Code string `json:"code"`
}

type exchangeResponse struct {
	Success bool `json:"success"`
}

type logoutResponse struct {
	Success bool `json:"success"`
}

type currentUserResponse struct {
	Data *users.User `json:"data"`
}
