package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
)

// AuthzService resolves presented credentials into an effective identity.
// A bearer token, when present, always wins: validation failure is reported
// immediately with no fall back to the API key.
type AuthzService struct {
	tokens   ports.TokenService
	denylist ports.TokenDenylist // optional; nil disables revocation checks
	apiKey   string
}

func NewAuthzService(tokens ports.TokenService, denylist ports.TokenDenylist, apiKey string) *AuthzService {
	return &AuthzService{tokens: tokens, denylist: denylist, apiKey: apiKey}
}

// Resolve implements ports.AuthzResolver.
func (s *AuthzService) Resolve(ctx context.Context, bearerToken, apiKey string) (domain.Identity, *domain.TokenClaims, error) {
	if bearerToken != "" {
		claims, err := s.tokens.Validate(bearerToken)
		if err != nil {
			return domain.Identity{}, nil, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, err)
		}
		if s.denylist != nil && claims.TokenID != "" {
			revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
			if err != nil {
				return domain.Identity{}, nil, fmt.Errorf("revocation check: %w", err)
			}
			if revoked {
				return domain.Identity{}, nil, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, domain.ErrTokenRevoked)
			}
		}
		return domain.UserIdentity(claims.Subject, claims.Role), claims, nil
	}

	if apiKey != "" {
		if s.apiKey != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.apiKey)) == 1 {
			return domain.APIKeyIdentity(), nil, nil
		}
		return domain.Identity{}, nil, fmt.Errorf("%w: invalid api key", domain.ErrUnauthenticated)
	}

	return domain.Identity{}, nil, domain.ErrUnauthenticated
}
