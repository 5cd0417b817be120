package ports

import (
	"context"

	"github.com/nify/user-portal/internal/core/domain"
)

// UserUpdate carries a partial update. A nil pointer means "leave the field
// untouched"; a pointer to the zero value means "clear it". This tri-state is
// what lets PATCH distinguish omitted keys from explicit blanks.
type UserUpdate struct {
	Nickname     *string
	Whatsapp     *string
	RealName     *string
	Role         *string
	PasswordHash *string
}

// UserRepository defines the persistence contract for user records.
// Uniqueness of the normalized nickname must be enforced atomically by the
// store itself (unique index); Insert and Update return
// domain.ErrNicknameTaken on violation.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByNickname(ctx context.Context, nickname string) (*domain.User, error)
	// FindAdminByNickname matches on nickname AND role ADMIN in one query.
	FindAdminByNickname(ctx context.Context, nickname string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	// Delete is idempotent: deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
