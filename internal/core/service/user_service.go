package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nify/user-portal/internal/core/domain"
	"github.com/nify/user-portal/internal/core/ports"
)

// UserService owns every user-record mutation rule: nickname normalization
// and uniqueness, tri-state partial updates, password rehash, and the two
// deletion guards (self, bootstrap admin).
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a USER-role record from public self-registration.
func (s *UserService) Register(ctx context.Context, input ports.CreateUserInput) (*ports.UserProjection, error) {
	user, err := s.create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("nickname", user.Nickname).Msg("user registered")
	return project(user), nil
}

// Create is the admin-issued variant of Register: same normalization and
// uniqueness rules, role forced to USER.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.UserProjection, error) {
	user, err := s.create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("nickname", user.Nickname).Msg("user created by admin")
	return project(user), nil
}

func (s *UserService) create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	nickname := domain.NormalizeNickname(input.Nickname)
	if nickname == "" {
		return nil, domain.ErrNicknameRequired
	}

	// Friendly pre-check; the unique index is what actually closes the race
	// between concurrent creations.
	if _, err := s.repo.FindByNickname(ctx, nickname); err == nil {
		return nil, domain.ErrNicknameTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	user := &domain.User{
		Nickname:  nickname,
		Whatsapp:  strings.TrimSpace(input.Whatsapp),
		RealName:  strings.TrimSpace(input.RealName),
		Role:      domain.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	return s.repo.Insert(ctx, user)
}

// List returns all records, newest first.
func (s *UserService) List(ctx context.Context) ([]*ports.UserProjection, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ports.UserProjection, 0, len(users))
	for _, u := range users {
		out = append(out, project(u))
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*ports.UserProjection, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return project(user), nil
}

// Update applies a partial update: only supplied fields change.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*ports.UserProjection, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var upd ports.UserUpdate

	if input.Nickname != nil {
		nickname := domain.NormalizeNickname(*input.Nickname)
		if nickname == "" {
			return nil, domain.ErrNicknameRequired
		}
		// A record keeping its own nickname is not a conflict.
		if nickname != existing.Nickname {
			other, err := s.repo.FindByNickname(ctx, nickname)
			if err == nil && other.ID != id {
				return nil, domain.ErrNicknameTaken
			}
			if err != nil && err != domain.ErrUserNotFound {
				return nil, err
			}
		}
		upd.Nickname = &nickname
	}

	if input.Whatsapp != nil {
		v := strings.TrimSpace(*input.Whatsapp)
		upd.Whatsapp = &v
	}
	if input.RealName != nil {
		v := strings.TrimSpace(*input.RealName)
		upd.RealName = &v
	}

	// An unrecognised role value is dropped; the rest of the update still
	// applies and the stored role stays as it was.
	if input.Role != nil && domain.ValidRole(*input.Role) {
		upd.Role = input.Role
	}

	// Any non-blank password triggers a rehash, whatever the record's role
	// ends up being. A blank or omitted one leaves the stored hash alone.
	if input.Password != nil && strings.TrimSpace(*input.Password) != "" {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return project(updated), nil
}

// Delete removes a record and reports whether one was actually removed. The
// caller's own record and the seeded bootstrap admin are refused; a missing
// target is a silent success.
func (s *UserService) Delete(ctx context.Context, id, callerID string) (bool, error) {
	if id == callerID {
		return false, domain.ErrSelfDelete
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return false, nil
		}
		return false, err
	}
	if target.Bootstrap {
		return false, domain.ErrBootstrapProtected
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, err
	}

	s.logger.Info().Str("user_id", id).Str("nickname", target.Nickname).Msg("user deleted")
	return true, nil
}

func project(u *domain.User) *ports.UserProjection {
	return &ports.UserProjection{
		ID:        u.ID,
		Nickname:  u.Nickname,
		Whatsapp:  u.Whatsapp,
		RealName:  u.RealName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
