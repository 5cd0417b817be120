package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nify/user-portal/internal/api/session"
	"github.com/nify/user-portal/internal/core/domain"
	"github.com/nify/user-portal/internal/core/ports"
)

// stubRepo only backs FindByID; the gate never calls anything else.
type stubRepo struct {
	users map[string]*domain.User
}

func (r *stubRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubRepo) Insert(context.Context, *domain.User) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubRepo) FindByNickname(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubRepo) FindAdminByNickname(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubRepo) List(context.Context) ([]*domain.User, error) { return nil, nil }
func (r *stubRepo) Update(context.Context, string, ports.UserUpdate) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubRepo) Delete(context.Context, string) error { return nil }

func adminCookie(t *testing.T, m *session.Manager, userID string) *http.Cookie {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	if err := m.Issue(c, userID); err != nil {
		t.Fatalf("issue: %v", err)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	t.Fatalf("no session cookie issued")
	return nil
}

func runGate(t *testing.T, repo *stubRepo, cookie *http.Cookie, sessions *session.Manager) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := RequireAdmin(sessions, repo)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called, c
}

func TestRequireAdmin_ValidAdmin(t *testing.T) {
	sessions := session.NewManager("secret", time.Hour, false)
	repo := &stubRepo{users: map[string]*domain.User{
		"a1": {ID: "a1", Nickname: "drlazinho", Role: domain.RoleAdmin},
	}}

	rec, called, c := runGate(t, repo, adminCookie(t, sessions, "a1"), sessions)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get(CtxAdminID) != "a1" {
		t.Fatalf("admin_id not set")
	}
	if c.Get(CtxAdminNickname) != "drlazinho" {
		t.Fatalf("admin_nickname not set")
	}
}

func TestRequireAdmin_MissingCookie(t *testing.T) {
	sessions := session.NewManager("secret", time.Hour, false)
	repo := &stubRepo{users: map[string]*domain.User{}}

	rec, called, _ := runGate(t, repo, nil, sessions)
	if called {
		t.Fatalf("next must not run without a session")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_MalformedCookie(t *testing.T) {
	sessions := session.NewManager("secret", time.Hour, false)
	repo := &stubRepo{users: map[string]*domain.User{}}

	cookie := &http.Cookie{Name: session.CookieName, Value: "garbage"}
	rec, called, _ := runGate(t, repo, cookie, sessions)
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed cookie, got %d (called=%v)", rec.Code, called)
	}
}

func TestRequireAdmin_DeletedRecord(t *testing.T) {
	sessions := session.NewManager("secret", time.Hour, false)
	repo := &stubRepo{users: map[string]*domain.User{}}

	// Token is valid but the account behind it is gone.
	rec, called, _ := runGate(t, repo, adminCookie(t, sessions, "a1"), sessions)
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted record, got %d (called=%v)", rec.Code, called)
	}
}

func TestRequireAdmin_NonAdminRecord(t *testing.T) {
	sessions := session.NewManager("secret", time.Hour, false)
	repo := &stubRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Nickname: "joao", Role: domain.RoleUser},
	}}

	rec, called, _ := runGate(t, repo, adminCookie(t, sessions, "u1"), sessions)
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin record, got %d (called=%v)", rec.Code, called)
	}
}
