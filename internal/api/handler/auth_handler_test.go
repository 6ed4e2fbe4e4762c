package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-task-api/internal/api/middleware"
	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error)
	loginFn       func(ctx context.Context, username, password string) (string, *domain.User, error)
	createAdminFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	listUsersFn   func(ctx context.Context) ([]*domain.User, error)
	getUserFn     func(ctx context.Context, username string) (*domain.User, error)
	logoutFn      func(ctx context.Context, claims *domain.TokenClaims) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CreateAdmin(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.createAdminFn(ctx, in)
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubAuthService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return s.getUserFn(ctx, username)
}

func (s *stubAuthService) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	return s.logoutFn(ctx, claims)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (string, *domain.User, error) {
			if in.Username != "alice" || in.Role != domain.RoleClient {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "signed-token", &domain.User{Username: in.Username, Role: in.Role, IsActive: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"pass123","role":"client"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "signed-token" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	cases := []string{
		`not-json`,
		`{"username":"ab","email":"a@example.com","password":"pass123"}`,
		`{"username":"alice","email":"not-an-email","password":"pass123"}`,
		`{"username":"alice","email":"a@example.com","password":"short"}`,
		`{"username":"alice","email":"a@example.com","password":"pass123","role":"superuser"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)
		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_ServiceErrorsPropagate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (string, *domain.User, error) {
			return "", nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"pass123"}`)

	// Domain errors pass through untouched for the central error handler.
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.User, error) {
			if username != "alice" || password != "pass123" {
				return "", nil, domain.ErrInvalidCredentials
			}
			return "signed-token", &domain.User{Username: username, Role: domain.RoleClient}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"pass123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newTestContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	stub := &stubAuthService{
		getUserFn: func(_ context.Context, username string) (*domain.User, error) {
			if username != "alice" {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{Username: "alice", Role: domain.RoleClient}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set(middleware.ClaimsKey, &domain.TokenClaims{Subject: "alice", Role: domain.RoleClient})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_APIKeyRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	// API key requests have an identity but no token claims.
	c, _ := newTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set(middleware.IdentityKey, domain.APIKeyIdentity())

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for api key identity, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var revoked *domain.TokenClaims
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, claims *domain.TokenClaims) error {
			revoked = claims
			return nil
		},
	}
	h := NewAuthHandler(stub)

	claims := &domain.TokenClaims{Subject: "alice", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}
	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.ClaimsKey, claims)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked == nil || revoked.TokenID != "jti-1" {
		t.Fatalf("claims not passed to service: %+v", revoked)
	}
}

func TestAuthHandler_VerifyToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodGet, "/auth/verify-token", "")
	c.Set(middleware.ClaimsKey, &domain.TokenClaims{Subject: "alice", Role: domain.RoleAdmin})

	if err := h.VerifyToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp verifyTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Valid || resp.Username != "alice" || resp.Role != "admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_ListUsers_Empty(t *testing.T) {
	stub := &stubAuthService{
		listUsersFn: func(_ context.Context) ([]*domain.User, error) { return nil, nil },
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/auth/users", "")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
