package ports

import (
	"context"
	"time"
)

// UserProjection is the client-safe view of a user record. It never carries
// the password hash.
type UserProjection struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Whatsapp  string    `json:"whatsapp,omitempty"`
	RealName  string    `json:"realName,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserInput is shared by public registration and admin-issued creation;
// both force role USER.
type CreateUserInput struct {
	Nickname string
	Whatsapp string
	RealName string
}

// UpdateUserInput mirrors ports.UserUpdate at the service boundary, before
// normalization and password hashing have been applied.
type UpdateUserInput struct {
	Nickname *string
	Whatsapp *string
	RealName *string
	Role     *string
	Password *string
}

type UserService interface {
	Register(ctx context.Context, input CreateUserInput) (*UserProjection, error)
	List(ctx context.Context) ([]*UserProjection, error)
	Get(ctx context.Context, id string) (*UserProjection, error)
	Create(ctx context.Context, input CreateUserInput) (*UserProjection, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*UserProjection, error)
	// Delete reports whether a record was actually removed; deleting an
	// absent id succeeds with false.
	Delete(ctx context.Context, id, callerID string) (bool, error)
}
