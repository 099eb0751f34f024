package service

import (
	"context"
	"errors"
	"fmt"

	"taxiservice/internal/auth"
	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/repository"
)

// AuthService handles session login, validation and logout.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, claims *auth.Claims, err error)
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	driverRepo repository.DriverRepository
	sessions   *auth.SessionService
	tokenStore auth.TokenStoreInterface
	hasher     *auth.PasswordHasher
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	driverRepo repository.DriverRepository,
	sessions *auth.SessionService,
	tokenStore auth.TokenStoreInterface,
	hasher *auth.PasswordHasher,
) AuthService {
	return &authService{
		driverRepo: driverRepo,
		sessions:   sessions,
		tokenStore: tokenStore,
		hasher:     hasher,
	}
}

// Login verifies credentials and opens a session.
func (s *authService) Login(ctx context.Context, username, password string) (string, *auth.Claims, error) {
	driver, err := s.driverRepo.FindByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("find driver: %w", err)
	}

	if !s.hasher.Check(driver.PasswordHash, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, claims, err := s.sessions.Issue(driver.ID, driver.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue session: %w", err)
	}
	return token, claims, nil
}

// Authenticate validates a session token and rejects logged-out sessions.
func (s *authService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}
	revoked, err := s.tokenStore.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if revoked {
		return nil, apperrors.ErrInvalidSession
	}
	return claims, nil
}

// Logout revokes the session until it would have expired.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return apperrors.ErrInvalidSession
	}
	return s.tokenStore.Revoke(ctx, claims.ID, s.sessions.Remaining(claims))
}
