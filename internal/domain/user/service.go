package user

import "context"

type UserService interface {
	// GetUser retrieves a single user by ID
	GetUser(ctx context.Context, id string) (UserInfo, error)

	// ListUsers retrieves users with pagination
	ListUsers(ctx context.Context, filter ListFilter) (ListUsersResponse, error)

	// DeleteUser removes a user account
	DeleteUser(ctx context.Context, id string) error
}
