package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ulysse/cms-api/internal/api/metrics"
	"github.com/ulysse/cms-api/internal/core/domain"
	"github.com/ulysse/cms-api/internal/core/ports"
)

// AuthService implements registration and login over a credential store.
type AuthService struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	now    func() time.Time
}

func NewAuthService(users ports.UserStore, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, now: time.Now}
}

// Register creates a user and returns a token for it. An empty role means
// Client. The store's uniqueness check is authoritative; the lookup here only
// avoids hashing for an email that is already taken.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	token, user, err := s.register(ctx, email, password, role)
	metrics.AuthRequestsTotal.WithLabelValues("register", authResult(err)).Inc()
	return token, user, err
}

func (s *AuthService) register(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}
	if role == "" {
		role = domain.RoleClient
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidRole
	}

	created, err := s.create(ctx, email, password, role)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(domain.Identity{Email: created.Email, Role: created.Role})
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	token, user, err := s.login(ctx, email, password)
	metrics.AuthRequestsTotal.WithLabelValues("login", authResult(err)).Inc()
	return token, user, err
}

func (s *AuthService) login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Accounts written outside the API may carry any role string; those
	// sign in with Client rights.
	role := user.Role
	if !domain.ValidRole(role) {
		role = domain.RoleClient
	}
	token, err := s.tokens.Issue(domain.Identity{Email: user.Email, Role: role})
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// EnsureAdmin creates an Admin account unless the email is already taken.
// created is false when an account existed; its role is left untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (*domain.User, bool, error) {
	if email == "" || password == "" {
		return nil, false, domain.ErrMissingCredentials
	}

	user, err := s.create(ctx, email, password, domain.RoleAdmin)
	if errors.Is(err, domain.ErrUserExists) {
		existing, findErr := s.users.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, false, fmt.Errorf("lookup user: %w", findErr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *AuthService) create(ctx context.Context, email, password, role string) (*domain.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func authResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrUserExists):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid"
	case errors.Is(err, domain.ErrMissingCredentials), errors.Is(err, domain.ErrInvalidRole):
		return "bad_request"
	default:
		return "error"
	}
}
