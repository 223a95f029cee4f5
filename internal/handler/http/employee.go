package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/employee"
	"github.com/zeitgrid/worktime-backend-go/internal/handler/http/response"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// GetProfile handles GET /employees/{user_id}
func (h *employeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := chi.URLParam(r, "user_id")
	if !validator.IsValidUUID(userID) {
		response.BadRequest(w, "invalid user id", nil)
		return
	}

	result, err := h.employeeService.GetProfile(ctx, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile handles PATCH /employees/{user_id}
func (h *employeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := chi.URLParam(r, "user_id")
	if !validator.IsValidUUID(userID) {
		response.BadRequest(w, "invalid user id", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.employeeService.UpdateProfile(ctx, userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", result)
}
