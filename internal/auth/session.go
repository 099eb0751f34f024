package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL is used when no positive TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// Claims identifies the driver bound to a session.
type Claims struct {
	DriverID uint   `json:"driver_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session tokens.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a session service with the given secret and lifetime.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the lifetime of newly issued sessions.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for the driver. Each token carries a unique ID
// so it can be revoked on logout.
func (s *SessionService) Issue(driverID uint, username string) (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		DriverID: driverID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// Parse validates a token and returns its claims.
func (s *SessionService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" {
		return nil, errors.New("token ID not found")
	}
	return claims, nil
}

// Remaining returns how long the claims stay valid.
func (s *SessionService) Remaining(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	d := claims.ExpiresAt.Time.Sub(s.now())
	if d < 0 {
		return 0
	}
	return d
}
