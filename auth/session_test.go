package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/globals"

	"go.uber.org/zap"
)

func newSessionHandler() (*Handler, *TokenService) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	return NewHandler(tokens, false, zap.NewNop()), tokens
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == globals.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestCreateSessionSetsVerifiableCookie(t *testing.T) {
	h, tokens := newSessionHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{"email":"a@x.com"}`))
	h.CreateSession(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	cookie := sessionCookieFrom(t, rec)
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	claims, err := tokens.Verify(cookie.Value)
	if err != nil {
		t.Fatalf("cookie token does not verify: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("claim email = %q, want a@x.com", claims.Email)
	}
}

func TestCreateSessionRequiresEmail(t *testing.T) {
	h, _ := newSessionHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{}`))
	h.CreateSession(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	h, _ := newSessionHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session/logout", nil)
	h.Logout(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	cookie := sessionCookieFrom(t, rec)
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Errorf("cookie not cleared: value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}
