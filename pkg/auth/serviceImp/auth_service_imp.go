package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"agrosense/entities"
	"agrosense/pkg/apperr"
	"agrosense/pkg/auth/repository"
	"agrosense/pkg/auth/service"
)

type authSvc struct {
	users repository.UserRepository
	cost  int
	log   *zap.Logger
}

// NewAuthService hashes with cost; pass 0 for bcrypt.DefaultCost.
func NewAuthService(users repository.UserRepository, cost int, log *zap.Logger) service.AuthService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &authSvc{users: users, cost: cost, log: log}
}

func (s *authSvc) Register(ctx context.Context, name, email, password string) (*entities.User, error) {
	name, email = strings.TrimSpace(name), strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("name, email, password required")
	}
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "Registration failed")
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "Registration failed")
	}
	u := &entities.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			return nil, err
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "Registration failed")
	}
	s.log.Info("user registered", zap.Uint("id", u.ID))
	return u, nil
}

func (s *authSvc) Login(ctx context.Context, email, password string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password required")
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "Login failed")
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Auth("Invalid password")
	}
	return u, nil
}
