package ports

import (
	"context"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create a user account.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     domain.Role
}

// AuthService implements account registration, login, and the admin-only
// user-administration operations.
type AuthService interface {
	// Register creates a user and returns a fresh access token alongside it.
	// Registering with the admin role is only allowed for the very first
	// account; afterwards it fails with domain.ErrAdminSignupClosed.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// CreateAdmin creates an account with the admin role regardless of the
	// role supplied in the input. Callers must already be admin-gated.
	CreateAdmin(ctx context.Context, in RegisterInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
	// Logout revokes the token identified by claims until its expiry.
	Logout(ctx context.Context, claims *domain.TokenClaims) error
}
