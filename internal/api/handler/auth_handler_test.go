package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/repairworks/backoffice/internal/api/metrics"
	"github.com/repairworks/backoffice/internal/api/middleware"
	"github.com/repairworks/backoffice/internal/core/domain"
)

type stubAuthService struct {
	token     string
	principal *domain.Principal
	err       error
	revoked   []string
}

func (s *stubAuthService) Login(_ context.Context, login, password string) (string, *domain.Principal, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.principal, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	svc := &stubAuthService{
		token:     "signed-token",
		principal: &domain.Principal{ID: "u-1", Login: "user1"},
	}
	h := NewAuthHandler(svc, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"user1","password":"user1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	var found *http.Cookie
	for _, ck := range cookies {
		if ck.Name == middleware.CookieName {
			found = ck
		}
	}
	if found == nil {
		t.Fatalf("session cookie not set")
	}
	if found.Value != "signed-token" || !found.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", found)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	svc := &stubAuthService{err: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"user1","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			t.Fatalf("no cookie must be set on failed login")
		}
	}
}

func TestAuthHandler_Login_FailureCounterSkipsStoreErrors(t *testing.T) {
	e := newEcho()
	failures := metrics.LoginsTotal.WithLabelValues("failure")

	login := func(svc *stubAuthService) error {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"user1","password":"user1"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())
		return NewAuthHandler(svc, time.Hour).Login(c)
	}

	before := testutil.ToFloat64(failures)
	if err := login(&stubAuthService{err: errors.New("store session: connection refused")}); err == nil {
		t.Fatalf("expected store error to surface")
	}
	if got := testutil.ToFloat64(failures); got != before {
		t.Fatalf("store outage must not count as a failed attempt: %v -> %v", before, got)
	}

	if err := login(&stubAuthService{err: domain.ErrInvalidCredentials}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if got := testutil.ToFloat64(failures); got != before+1 {
		t.Fatalf("credential mismatch must count as a failed attempt: %v -> %v", before, got)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":"user1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "signed-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login.html" {
		t.Fatalf("expected redirect to /login.html, got %q", loc)
	}
	if len(svc.revoked) != 1 || svc.revoked[0] != "signed-token" {
		t.Fatalf("session not revoked: %v", svc.revoked)
	}

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName && ck.MaxAge != -1 {
			t.Fatalf("cookie not expired: %+v", ck)
		}
	}
}
