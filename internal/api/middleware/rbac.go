package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route on role membership. Composed after Auth: the
// rol claim must already be in context, so an authenticated caller with
// the wrong role gets 403, not 401.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rol, _ := c.Get("rol").(string)
			if _, ok := allowed[rol]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
