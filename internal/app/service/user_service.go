package service

import (
	"context"

	"holiday_tracker/internal/common"
	"holiday_tracker/internal/domain/model"
	"holiday_tracker/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns all users. Read-only, admin and reviewer only; reviewers have
// no permissions beyond this view.
func (s *UserService) List(ctx context.Context, p model.Principal) ([]model.User, error) {
	if p.Role != model.RoleAdmin && p.Role != model.RoleReviewer {
		return nil, common.Errorf("only admins and reviewers may list users: %w", common.ErrForbidden)
	}
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, common.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
