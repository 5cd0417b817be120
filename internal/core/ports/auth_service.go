package ports

import (
	"context"

	"github.com/nify/user-portal/internal/core/domain"
)

type AuthService interface {
	// Login verifies admin credentials and returns the matching record.
	// Bad password and unknown nickname are indistinguishable to the caller
	// (domain.ErrInvalidCredentials); domain.ErrUserNotFound surfaces only
	// when the record disappears between verification and the final read.
	Login(ctx context.Context, nickname, password string) (*domain.User, error)
}
