package service

import (
	"context"

	"agrosense/entities"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (*entities.User, error)
}
