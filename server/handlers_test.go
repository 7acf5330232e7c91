package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/srcbookdev/mocha-users-service-sdk/errors"
	"github.com/srcbookdev/mocha-users-service-sdk/server"
	"github.com/srcbookdev/mocha-users-service-sdk/users"
)

type fakeService struct {
	redirectURL string
	redirectErr error

	exchangeToken string
	exchangeErr   error
	exchangeCalls atomic.Int32

	user *users.User

	deleteCalls atomic.Int32
	deletedTok  string
}

func (f *fakeService) GetOAuthRedirectURL(_ context.Context, provider string) (string, error) {
	if !users.IsSupportedProvider(provider) {
		return "", errors.UnsupportedProvider(provider)
	}
	return f.redirectURL, f.redirectErr
}

func (f *fakeService) ExchangeCodeForSessionToken(_ context.Context, _ string) (string, error) {
	f.exchangeCalls.Add(1)
	return f.exchangeToken, f.exchangeErr
}

func (f *fakeService) GetCurrentUser(_ context.Context, _ string) *users.User {
	return f.user
}

func (f *fakeService) DeleteSession(_ context.Context, token string) {
	f.deleteCalls.Add(1)
	f.deletedTok = token
}

func newTestRouter(svc server.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	server.Routes(r, svc)
	return r
}

func TestGetOAuthRedirectURL_Endpoint(t *testing.T) {
	svc := &fakeService{redirectURL: "https://accounts.google.com/o/oauth2/auth?state=s1"}
	r := newTestRouter(svc)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/oauth/google/redirect_url", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["redirect_url"] != svc.redirectURL {
		t.Errorf("unexpected redirect_url: %s", body["redirect_url"])
	}
}

func TestGetOAuthRedirectURL_UnsupportedProvider(t *testing.T) {
	r := newTestRouter(&fakeService{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/oauth/facebook/redirect_url", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "UNSUPPORTED_PROVIDER") {
		t.Errorf("expected UNSUPPORTED_PROVIDER body, got %s", rr.Body.String())
	}
}

func TestCreateSession_SetsCookie(t *testing.T) {
	svc := &fakeService{exchangeToken: "tok_1"}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(`{"code":"abc123"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	setCookie := rr.Header().Get("Set-Cookie")
	for _, want := range []string{
		users.SessionCookieName + "=tok_1",
		"Max-Age=5184000",
		"Path=/",
		"HttpOnly",
		"Secure",
		"SameSite=None",
	} {
		if !strings.Contains(setCookie, want) {
			t.Errorf("Set-Cookie missing %q: %s", want, setCookie)
		}
	}
}

func TestCreateSession_MissingCode(t *testing.T) {
	svc := &fakeService{exchangeToken: "tok_1"}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "MISSING_CODE") {
		t.Errorf("expected MISSING_CODE body, got %s", rr.Body.String())
	}
	if svc.exchangeCalls.Load() != 0 {
		t.Errorf("expected no exchange attempt, got %d", svc.exchangeCalls.Load())
	}
}

func TestCreateSession_UpstreamFailure(t *testing.T) {
	svc := &fakeService{exchangeErr: errors.Upstream(http.StatusBadRequest)}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(`{"code":"used"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	if strings.Contains(rr.Header().Get("Set-Cookie"), users.SessionCookieName+"=tok") {
		t.Error("failed exchange must not set a session cookie")
	}
}

func TestGetCurrentUser_Endpoint(t *testing.T) {
	svc := &fakeService{user: &users.User{ID: "user_1", Email: "ada@example.com"}}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.AddCookie(&http.Cookie{Name: users.SessionCookieName, Value: "tok_1"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Data users.User `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Data.ID != "user_1" {
		t.Errorf("expected user_1, got %+v", body.Data)
	}
}

func TestGetCurrentUser_Endpoint_NoCookie(t *testing.T) {
	r := newTestRouter(&fakeService{user: &users.User{ID: "user_1"}})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: users.SessionCookieName, Value: "tok_1"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if svc.deleteCalls.Load() != 1 || svc.deletedTok != "tok_1" {
		t.Errorf("expected one revocation of tok_1, got %d calls (%s)", svc.deleteCalls.Load(), svc.deletedTok)
	}

	setCookie := rr.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("expected expired cookie, got %s", setCookie)
	}
	if !strings.Contains(setCookie, "SameSite=None") || !strings.Contains(setCookie, "Path=/") {
		t.Errorf("clearing must keep identical scoping attributes, got %s", setCookie)
	}
}

func TestLogout_NoCookie(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/logout", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if svc.deleteCalls.Load() != 0 {
		t.Errorf("expected no revocation without a cookie, got %d", svc.deleteCalls.Load())
	}
}
