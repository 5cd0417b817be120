package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName is the single session cookie the portal uses.
const CookieName = "admin_session"

const defaultTTL = 7 * 24 * time.Hour

// ErrNoSession covers every way a request can fail to carry a usable
// session: no cookie, expired token, bad signature, wrong algorithm.
var ErrNoSession = errors.New("no valid session")

// Manager issues and reads the admin session cookie. The cookie value is an
// HS256 JWT whose subject is the user id; there is no server-side session
// table, so a session stays usable exactly as long as the underlying admin
// record exists.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewManager builds a Manager. secure controls the cookie's Secure flag and
// should be true in production deployments.
func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Issue signs a session token for userID and sets it as the session cookie.
func (m *Manager) Issue(c echo.Context, userID string) error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve extracts the user id from the request's session cookie.
func (m *Manager) Resolve(c echo.Context) (string, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	claims := jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", ErrNoSession
	}

	return claims.Subject, nil
}

// Revoke clears the session cookie. Purely client-side: a copy of the token
// stays valid until it expires or the admin record is removed.
func (m *Manager) Revoke(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
