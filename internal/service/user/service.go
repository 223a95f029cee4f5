package user

import (
	"context"
	"fmt"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserInfo, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserInfo{}, err
	}
	return user.ToUserInfo(u), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.ListFilter) (user.ListUsersResponse, error) {
	filter.Normalize()

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("list users: %w", err)
	}

	infos := make([]user.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, user.ToUserInfo(u))
	}

	return user.ListUsersResponse{
		Users:      infos,
		TotalItems: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
