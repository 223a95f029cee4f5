package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// GetProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, userID string) (employee.ProfileResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return employee.ToProfileResponse(emp), nil
}

// UpdateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, userID string, req employee.UpdateEmployeeRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}

	current, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	update := buildUpdate(current, req)
	if update.IsEmpty() {
		return employee.ToProfileResponse(current), nil
	}

	updated, err := s.employeeRepo.Update(ctx, current.ID, update)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("update employee profile: %w", err)
	}
	return employee.ToProfileResponse(updated), nil
}

// buildUpdate diffs the request against the stored profile and emits a
// sparse patch holding only the fields that actually changed.
func buildUpdate(current employee.Employee, req employee.UpdateEmployeeRequest) employee.EmployeeUpdate {
	var update employee.EmployeeUpdate

	if req.Birthday != nil {
		// Validate already guaranteed the format.
		birthday, _ := time.Parse("2006-01-02", *req.Birthday)
		if !sameDate(birthday, current.Birthday) {
			update.Birthday = &birthday
		}
	}

	if req.HourModel != nil && *req.HourModel != current.HourModel {
		update.HourModel = req.HourModel
	}

	if req.PauseTimeMinutes != nil && *req.PauseTimeMinutes != current.PauseTimeMinutes {
		update.PauseTimeMinutes = req.PauseTimeMinutes
	}

	if req.Region != nil && *req.Region != current.Region {
		update.Region = req.Region
	}

	return update
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
