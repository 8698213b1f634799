package user

import "context"

// Repository defines the interface for user persistence operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	CountByUsername(ctx context.Context, username string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByToken(ctx context.Context, token string) (*User, error)
	Update(ctx context.Context, user *User) error
}
