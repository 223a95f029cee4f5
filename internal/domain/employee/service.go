package employee

import "context"

type EmployeeService interface {
	// GetProfile retrieves the profile for a user account
	GetProfile(ctx context.Context, userID string) (ProfileResponse, error)

	// UpdateProfile diffs the request against the stored profile and
	// persists only the changed fields
	UpdateProfile(ctx context.Context, userID string, req UpdateEmployeeRequest) (ProfileResponse, error)
}
