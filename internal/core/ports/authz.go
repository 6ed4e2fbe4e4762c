package ports

import (
	"context"
	"time"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
)

// TokenService issues and validates signed access tokens.
type TokenService interface {
	Issue(user *domain.User) (string, *domain.TokenClaims, error)
	// Validate checks signature and expiry. Failures are reported as
	// domain.ErrTokenSignature, domain.ErrTokenExpired, or
	// domain.ErrTokenMalformed.
	Validate(token string) (*domain.TokenClaims, error)
}

// TokenDenylist records revoked token IDs until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthzResolver resolves a request's presented credentials into an effective
// identity. A present bearer token always takes precedence: if it fails
// validation the resolver reports domain.ErrUnauthenticated without falling
// back to the API key. Claims are non-nil only for token identities.
type AuthzResolver interface {
	Resolve(ctx context.Context, bearerToken, apiKey string) (domain.Identity, *domain.TokenClaims, error)
}
