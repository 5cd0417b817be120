package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nify/user-portal/internal/api"
	"github.com/nify/user-portal/internal/api/handler"
	"github.com/nify/user-portal/internal/api/session"
	"github.com/nify/user-portal/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, nickname, password string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, nickname, password string) (*domain.User, error) {
	return s.loginFn(ctx, nickname, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testSessions() *session.Manager {
	return session.NewManager("secret", time.Hour, false)
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, nickname, password string) (*domain.User, error) {
			if nickname != "drlazinho" || password != "123456" {
				t.Fatalf("unexpected args: %s %s", nickname, password)
			}
			return &domain.User{ID: "a1", Nickname: "drlazinho", Role: domain.RoleAdmin}, nil
		},
	}
	h := handler.NewAuthHandler(stub, testSessions())

	c, rec := postJSON(e, "/auth/login", `{"nickname":"drlazinho","password":"123456"}`)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookie(rec)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, nickname, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := handler.NewAuthHandler(stub, testSessions())

	c, rec := postJSON(e, "/auth/login", `{"nickname":"drlazinho","password":"bad"}`)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestAuthHandler_Login_UserVanished(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, nickname, password string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := handler.NewAuthHandler(stub, testSessions())

	c, rec := postJSON(e, "/auth/login", `{"nickname":"drlazinho","password":"123456"}`)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, nickname, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub, testSessions())

	c, rec := postJSON(e, "/auth/login", `{"nickname":"drlazinho"}`)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, nickname, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub, testSessions())

	c, rec := postJSON(e, "/auth/login", "not-json")
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := newTestEcho()
	h := handler.NewAuthHandler(&stubAuthService{}, testSessions())

	c, rec := postJSON(e, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookie(rec)
	if cookie == nil || cookie.MaxAge != -1 || cookie.Value != "" {
		t.Fatalf("logout must clear the session cookie: %+v", cookie)
	}
}
