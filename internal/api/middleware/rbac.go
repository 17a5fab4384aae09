package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole gates back-office routes on the role claim that Auth placed in
// the request context. Requests whose role is not in the allow list are
// rejected before the handler runs; the error is shaped by the central
// error handler like every other HTTP failure.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
