package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nify/user-portal/internal/api/session"
	"github.com/nify/user-portal/internal/core/domain"
	"github.com/nify/user-portal/internal/core/ports"
)

// Context keys set by RequireAdmin for downstream handlers.
const (
	CtxAdminID       = "admin_id"
	CtxAdminNickname = "admin_nickname"
)

// RequireAdmin resolves the session cookie to a live ADMIN record and
// injects its identity into the request context. Every failure collapses to
// a bare 401: callers must not learn whether the cookie was missing, the
// token bogus, or the account gone.
func RequireAdmin(sessions *session.Manager, repo ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := sessions.Resolve(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			user, err := repo.FindByID(c.Request().Context(), userID)
			if err != nil || user.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(CtxAdminID, user.ID)
			c.Set(CtxAdminNickname, user.Nickname)

			return next(c)
		}
	}
}
