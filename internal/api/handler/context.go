package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-task-api/internal/api/middleware"
	"github.com/staffdesk/employee-task-api/internal/core/domain"
)

// ctxIdentity extracts the effective identity injected by the Authenticate
// middleware. Its presence proves the middleware ran.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}

// ctxClaims extracts the token claims. API-key requests carry an identity but
// no claims, so endpoints that operate on the token itself (me, logout,
// verify) reject them here.
func ctxClaims(c echo.Context) (*domain.TokenClaims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*domain.TokenClaims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "bearer token required")
	}
	return claims, nil
}
