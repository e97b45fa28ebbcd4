package service

import (
	"context"
	"errors"
	"time"

	"github.com/carstock/carstock-go/internal/crypto"
	"github.com/carstock/carstock-go/internal/model"
	"github.com/carstock/carstock-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnknownSubject     = errors.New("token subject does not resolve to a user")
)

// AuthService handles authentication business logic.
type AuthService struct {
	users     *repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		tokenTTL:  ttl,
	}
}

// Authenticate checks a username/password pair against the credential store.
// An unknown username and a wrong password are indistinguishable to callers.
// The disabled flag is not consulted here; it is enforced when the issued
// token is verified.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifyPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a bearer token for the given username.
func (s *AuthService) IssueToken(username string) (string, error) {
	return crypto.GenerateToken(username, s.jwtSecret, s.tokenTTL)
}

// CurrentUser resolves a verified token subject to its user row.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}
