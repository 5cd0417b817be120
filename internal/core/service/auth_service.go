package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nify/user-portal/internal/core/domain"
	"github.com/nify/user-portal/internal/core/ports"
)

// AuthService verifies administrator credentials. Session issuance lives at
// the HTTP layer; this service only answers "are these credentials good".
type AuthService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, nickname, password string) (*domain.User, error) {
	if nickname == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindAdminByNickname(ctx, domain.NormalizeNickname(nickname))
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Same answer as a wrong password; callers learn nothing about
			// which nicknames exist.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		s.logger.Warn().Str("nickname", user.Nickname).Msg("failed admin login")
		return nil, domain.ErrInvalidCredentials
	}

	// Re-read by id: the record may have been removed while the bcrypt
	// comparison ran. The distinct not-found answer is deliberate here.
	fresh, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("nickname", fresh.Nickname).Msg("admin login")
	return fresh, nil
}
