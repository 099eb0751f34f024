package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taxiservice/internal/auth"
	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("user12test")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		setup    func(repo *MockDriverRepository)
		wantErr  error
	}{
		{
			name:     "success",
			username: "admin",
			password: "user12test",
			setup: func(repo *MockDriverRepository) {
				repo.On("FindByUsername", mock.Anything, "admin").
					Return(&model.Driver{ID: 1, Username: "admin", PasswordHash: hash}, nil)
			},
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "nope",
			setup: func(repo *MockDriverRepository) {
				repo.On("FindByUsername", mock.Anything, "admin").
					Return(&model.Driver{ID: 1, Username: "admin", PasswordHash: hash}, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "user12test",
			setup: func(repo *MockDriverRepository) {
				repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDriverRepository)
			tt.setup(repo)
			svc := NewAuthService(repo, auth.NewSessionService("secret", time.Hour), new(MockTokenStore), hasher)

			token, claims, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, uint(1), claims.DriverID)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	sessions := auth.NewSessionService("secret", time.Hour)
	token, claims, err := sessions.Issue(4, "driver")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		revoked bool
		lookErr error
		wantErr error
	}{
		{name: "valid", token: token},
		{name: "revoked", token: token, revoked: true, wantErr: apperrors.ErrInvalidSession},
		{name: "garbage", token: "not-a-jwt", wantErr: apperrors.ErrInvalidSession},
		{name: "store failure", token: token, lookErr: errors.New("redis down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockTokenStore)
			store.On("IsRevoked", mock.Anything, claims.ID).Return(tt.revoked, tt.lookErr).Maybe()
			svc := NewAuthService(new(MockDriverRepository), sessions, store, auth.NewPasswordHasher(bcrypt.MinCost))

			got, err := svc.Authenticate(context.Background(), tt.token)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.lookErr != nil:
				assert.ErrorIs(t, err, tt.lookErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, uint(4), got.DriverID)
				assert.Equal(t, "driver", got.Username)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	sessions := auth.NewSessionService("secret", time.Hour)
	token, claims, err := sessions.Issue(4, "driver")
	require.NoError(t, err)

	store := new(MockTokenStore)
	store.On("Revoke", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= time.Hour
	})).Return(nil)
	svc := NewAuthService(new(MockDriverRepository), sessions, store, auth.NewPasswordHasher(bcrypt.MinCost))

	require.NoError(t, svc.Logout(context.Background(), token))
	store.AssertExpectations(t)

	assert.ErrorIs(t, svc.Logout(context.Background(), "bogus"), apperrors.ErrInvalidSession)
}
