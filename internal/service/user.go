package service

import (
	"context"
	"fmt"

	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Repo   ports.UserRepository
	Hasher ports.PasswordHasher
}

// UserService provisions and lists operator accounts. Provisioning is the only
// write path for user records; the auth core itself never mutates them.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{repo: opts.Repo, hasher: opts.Hasher}
}

// Provision hashes the plaintext password and creates the user record.
func (s *UserService) Provision(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, req, hash)
}

// List retrieves users with pagination.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	return s.repo.List(ctx, limit, offset)
}
