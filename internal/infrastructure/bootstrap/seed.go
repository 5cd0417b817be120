// Package bootstrap seeds the initial administrator record from externally
// supplied secrets. Without it no admin login is possible on a fresh store.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nify/user-portal/internal/core/domain"
	"github.com/nify/user-portal/internal/core/ports"
	"github.com/nify/user-portal/internal/core/service"
)

// SeedAdmin creates the bootstrap administrator if it does not exist yet.
//
// Behaviour, in order:
//   - nickname or password blank after normalization: log and return nil.
//   - a record with that nickname already exists: log and return nil.
//   - otherwise insert an ADMIN record with a bcrypt-hashed password and the
//     bootstrap flag set. Plaintext is never written to the store.
func SeedAdmin(ctx context.Context, repo ports.UserRepository, nickname, password string, log zerolog.Logger) error {
	nickname = domain.NormalizeNickname(nickname)
	if nickname == "" || password == "" {
		log.Warn().Msg("admin seed skipped: ADMIN_NICKNAME/ADMIN_PASSWORD not set")
		return nil
	}

	if _, err := repo.FindByNickname(ctx, nickname); err == nil {
		log.Info().Str("nickname", nickname).Msg("admin seed skipped: record already exists")
		return nil
	} else if err != domain.ErrUserNotFound {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	admin := &domain.User{
		Nickname:     nickname,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Bootstrap:    true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := repo.Insert(ctx, admin)
	if err != nil {
		// A concurrent replica may have seeded first; that is fine.
		if err == domain.ErrNicknameTaken {
			log.Info().Str("nickname", nickname).Msg("admin seed skipped: record already exists")
			return nil
		}
		return fmt.Errorf("seed admin insert: %w", err)
	}

	log.Info().Str("nickname", created.Nickname).Str("user_id", created.ID).Msg("bootstrap admin created")
	return nil
}
