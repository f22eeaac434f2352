package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/konveksi/order-system/internal/core/domain"
	"github.com/konveksi/order-system/internal/core/ports"
)

// hashCost is the bcrypt work factor used for all stored passwords.
const hashCost = bcrypt.DefaultCost

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Register hashes the password and persists a new user. Username uniqueness
// is enforced by the store's unique index; a duplicate surfaces as
// domain.ErrUserExists. No format checks are applied to either field.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to register user")
		return err
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	return nil
}

// Login checks the password for the given username. An unknown username and a
// wrong password both yield the same unauthenticated result, so a caller
// cannot tell which check failed. Only hard store errors are returned.
func (s *AuthService) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ports.LoginResult{}, nil
		}
		return ports.LoginResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ports.LoginResult{}, nil
	}

	return ports.LoginResult{Success: true, Username: user.Username}, nil
}
