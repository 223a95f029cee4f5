package user

import "context"

type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// List retrieves users with pagination and an optional employee filter
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)

	// Delete removes a user
	Delete(ctx context.Context, id string) error
}
