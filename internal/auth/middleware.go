package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Session is the explicit per-request identity object. Handlers read it from
// the echo context instead of reaching for ambient state.
type Session struct {
	UserID string
	Role   string
}

const sessionKey = "auth_session"

func SessionFromContext(c echo.Context) (Session, bool) {
	s, ok := c.Get(sessionKey).(Session)
	return s, ok
}

func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// RequireAdmin guards the back-office routes: a valid access token with the
// admin role or nothing.
func RequireAdmin(jwtSecret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			claims, err := AccessClaimsFromToken(token, jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.Role != "admin" {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}

			c.Set(sessionKey, Session{UserID: claims.Subject, Role: claims.Role})
			return next(c)
		}
	}
}

// RequireAuth guards routes that need any signed-in user.
func RequireAuth(jwtSecret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			claims, err := AccessClaimsFromToken(token, jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(sessionKey, Session{UserID: claims.Subject, Role: claims.Role})
			return next(c)
		}
	}
}
