package ports

import (
	"context"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
)

// UserRepository is the credential store: persisted user accounts looked up
// during login and user administration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
