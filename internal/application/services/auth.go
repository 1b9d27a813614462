package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/domain/user"
	"portfolio-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	userRepository user.Repository
	jwtService     *jwt.Service
}

func NewAuthService(
	userRepository user.Repository,
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login checks the password against the stored bcrypt hash and issues a token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}
	if u == nil || u.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Role, jwt.TokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
