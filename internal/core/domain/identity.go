package domain

import (
	"errors"
	"time"
)

// Authentication outcomes. The token-specific failures all collapse to
// ErrUnauthenticated at the resolver boundary; they stay distinct here so the
// token service can be tested precisely.
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("insufficient privileges")
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenSignature = errors.New("token signature invalid")
var ErrTokenRevoked = errors.New("token revoked")

// PrincipalAPIKey is the synthetic principal assigned to requests
// authenticated with the static API key.
const PrincipalAPIKey = "apikey"

// Identity is the resolved caller of a request. It is produced per-request by
// the authorization resolver and never persisted.
type Identity struct {
	Principal string
	Role      Role
}

// UserIdentity builds the identity for a token-authenticated user.
func UserIdentity(username string, role Role) Identity {
	return Identity{Principal: "user:" + username, Role: role}
}

// APIKeyIdentity is the identity granted to a valid API key: full admin
// rights under the fixed "apikey" principal.
func APIKeyIdentity() Identity {
	return Identity{Principal: PrincipalAPIKey, Role: RoleAdmin}
}

// TokenClaims is the decoded payload of a validated access token.
type TokenClaims struct {
	Subject   string
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
