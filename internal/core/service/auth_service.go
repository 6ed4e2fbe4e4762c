package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
)

// AuthService implements registration, login, logout, and the admin-only
// user-administration operations.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	denylist ports.TokenDenylist
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, denylist ports.TokenDenylist, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, denylist: denylist, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if in.Role == "" {
		in.Role = domain.RoleClient
	}
	if _, err := domain.ParseRole(string(in.Role)); err != nil {
		return "", nil, err
	}

	// Only the very first account may self-register as admin. Later admins
	// are created by an existing admin via CreateAdmin.
	if in.Role == domain.RoleAdmin {
		count, err := s.users.Count(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("count users: %w", err)
		}
		if count > 0 {
			return "", nil, domain.ErrAdminSignupClosed
		}
	}

	user, err := s.createUser(ctx, in)
	if err != nil {
		return "", nil, err
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user registered")
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrUserInactive
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) CreateAdmin(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	in.Role = domain.RoleAdmin

	user, err := s.createUser(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("admin user created")
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AuthService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// Logout revokes the token until its natural expiry. Without a denylist the
// call is a no-op: the token simply ages out.
func (s *AuthService) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	if s.denylist == nil || claims == nil || claims.TokenID == "" {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	s.log.Info().Str("username", claims.Subject).Msg("token revoked")
	return nil
}

func (s *AuthService) createUser(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if existing, err := s.users.FindByUsername(ctx, in.Username); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing, err := s.users.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}
