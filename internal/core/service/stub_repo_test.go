package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/nify/user-portal/internal/core/domain"
	"github.com/nify/user-portal/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository that mimics the store's
// unique-nickname guarantee.
type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) byNickname(nickname string) *domain.User {
	for _, u := range r.users {
		if u.Nickname == nickname {
			return u
		}
	}
	return nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.byNickname(user.Nickname) != nil {
		return nil, domain.ErrNicknameTaken
	}
	copy := cloneUser(user)
	r.seq++
	copy.ID = fmt.Sprintf("u%d", r.seq)
	r.users[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByNickname(_ context.Context, nickname string) (*domain.User, error) {
	if u := r.byNickname(nickname); u != nil {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAdminByNickname(_ context.Context, nickname string) (*domain.User, error) {
	if u := r.byNickname(nickname); u != nil && u.Role == domain.RoleAdmin {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Nickname != nil {
		if other := r.byNickname(*upd.Nickname); other != nil && other.ID != id {
			return nil, domain.ErrNicknameTaken
		}
		u.Nickname = *upd.Nickname
	}
	if upd.Whatsapp != nil {
		u.Whatsapp = *upd.Whatsapp
	}
	if upd.RealName != nil {
		u.RealName = *upd.RealName
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}
