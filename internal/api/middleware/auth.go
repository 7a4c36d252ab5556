package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tiempovital/admin-api/internal/core/auth"
)

// Auth validates the bearer token and injects the resolved identity into
// the request context. It depends only on the token manager — never on the
// entity stores. Missing, malformed, expired and badly signed tokens all
// reject with 401.
func Auth(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("userId", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("rol", claims.Rol)

			return next(c)
		}
	}
}
