package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-task-api/internal/api/metrics"
	"github.com/staffdesk/employee-task-api/internal/core/domain"
)

// Require gates a route on the permission policy: the resolved identity's
// role must be allowed to perform op. Must run after Authenticate.
func Require(op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !domain.Allowed(identity.Role, op) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
			}
			return next(c)
		}
	}
}
