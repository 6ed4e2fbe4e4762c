package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-task-api/internal/api/metrics"
	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
)

// Context keys set by Authenticate.
const (
	IdentityKey = "identity"
	ClaimsKey   = "claims"
)

// Authenticate resolves the request's credentials (bearer token and/or API
// key) into an effective identity and injects it into the context. A present
// bearer token always wins; if it fails validation the request is rejected
// without considering the API key.
func Authenticate(resolver ports.AuthzResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearer, err := bearerToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			apiKey := c.Request().Header.Get("X-API-Key")

			identity, claims, err := resolver.Resolve(c.Request().Context(), bearer, apiKey)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return err
			}

			c.Set(IdentityKey, identity)
			if claims != nil {
				c.Set(ClaimsKey, claims)
			}
			return next(c)
		}
	}
}

// bearerToken extracts the token from an Authorization header. An empty
// header yields an empty token; a non-Bearer scheme is an error.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("malformed authorization header")
	}
	return parts[1], nil
}
