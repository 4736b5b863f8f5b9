package repository

import (
	"context"

	"agrosense/entities"
)

type UserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	// FindByEmail returns nil, nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
