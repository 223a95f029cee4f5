package employee

import "context"

type EmployeeRepository interface {
	// GetByUserID retrieves the employee profile attached to a user account
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// Update applies a sparse patch to an employee profile
	Update(ctx context.Context, id string, update EmployeeUpdate) (Employee, error)
}
