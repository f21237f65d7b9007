package service

import (
	"context"
	"fmt"

	"github.com/talentbinder/dashboard/internal/domain"
)

type UserAPI interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserService backs the admin-only account management view.
type UserService struct {
	api UserAPI
}

func NewUserService(api UserAPI) *UserService {
	return &UserService{api: api}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.api.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.GetAll -> %w", err)
	}

	return domain.DedupeBy(users, func(u domain.User) uint { return u.ID }), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.api.Delete -> %w", err)
	}

	return nil
}
