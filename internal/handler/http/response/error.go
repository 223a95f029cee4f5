package response

import (
	"errors"
	"net/http"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/absence"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/employee"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/overview"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/policy"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/timeentry"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrSuperuserPrivilegeRequired):
		Forbidden(w, "Superuser privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee profile not found")

	// Entry domain errors
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrForbiddenForOther):
		Forbidden(w, "Booking for another user requires superuser")
	case errors.Is(err, absence.ErrEntryNotFound):
		NotFound(w, "Absence entry not found")
	case errors.Is(err, absence.ErrForbiddenForOther):
		Forbidden(w, "Booking for another user requires superuser")

	// Overview domain errors
	case errors.Is(err, overview.ErrInvertedRange):
		BadRequest(w, "Date start is after date end", nil)

	// Server policy errors: a broken policy store is an operator
	// problem, not a caller problem
	case errors.Is(err, policy.ErrPolicyNotFound),
		errors.Is(err, policy.ErrPolicyMisconfigured):
		InternalServerError(w, "Server policy is misconfigured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
