package auth

import (
	"context"
	"time"

	"taxiservice/internal/cache"
)

const revokedSessionKeyPrefix = "revoked:session:"

// TokenStoreInterface defines the interface for session revocation storage.
type TokenStoreInterface interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps revoked session IDs in Redis until the session would have expired.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// Revoke marks a session as logged out.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedSessionKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked checks if a session was logged out.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, revokedSessionKeyPrefix+tokenID)
	if err != nil {
		return false, nil // fail open like the rest of the cache layer
	}
	return data != nil, nil
}
