package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/domain/user"
	"portfolio-api/internal/infrastructure/jwt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	admin := &user.User{UUID: uuid.New(), Email: "admin@example.com", PasswordHash: &hashStr, Role: "admin"}

	tests := []struct {
		name     string
		email    string
		password string
		fetch    func(ctx context.Context, email string) (*user.User, error)
		wantErr  error
	}{
		{
			name:     "success normalizes email",
			email:    "  Admin@Example.com ",
			password: "s3cret-pass",
			fetch: func(_ context.Context, email string) (*user.User, error) {
				if email != "admin@example.com" {
					return nil, nil
				}
				return admin, nil
			},
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "nope",
			fetch:    func(context.Context, string) (*user.User, error) { return admin, nil },
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			email:    "ghost@example.com",
			password: "s3cret-pass",
			fetch:    func(context.Context, string) (*user.User, error) { return nil, nil },
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "user without password",
			email:    "admin@example.com",
			password: "s3cret-pass",
			fetch: func(context.Context, string) (*user.User, error) {
				return &user.User{UUID: uuid.New()}, nil
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	jwtService := jwt.New("test-secret")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := NewAuthService(&FakeUserRepository{FetchUserByEmailFunc: tt.fetch}, jwtService)

			token, err := as.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, admin.UUID.String(), claims.UserID)
			assert.Equal(t, "admin", claims.Role)
		})
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	dbErr := errors.New("db down")
	as := NewAuthService(&FakeUserRepository{
		FetchUserByEmailFunc: func(context.Context, string) (*user.User, error) { return nil, dbErr },
	}, jwt.New("test-secret"))

	_, err := as.Login(context.Background(), "admin@example.com", "x")
	require.ErrorIs(t, err, dbErr)
}
