package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
	"github.com/zeitgrid/worktime-backend-go/internal/handler/http/response"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/validator"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// List handles GET /users
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := user.ListFilter{}
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			response.BadRequest(w, "invalid page parameter", nil)
			return
		}
		filter.Page = page
	}
	if sizeStr := r.URL.Query().Get("page_size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			response.BadRequest(w, "invalid page_size parameter", nil)
			return
		}
		filter.PageSize = size
	}
	if empStr := r.URL.Query().Get("is_employee"); empStr != "" {
		isEmployee, err := strconv.ParseBool(empStr)
		if err != nil {
			response.BadRequest(w, "invalid is_employee parameter", nil)
			return
		}
		filter.IsEmployee = &isEmployee
	}

	result, err := h.userService.ListUsers(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Users, &response.Meta{
		Page:       result.Page,
		Limit:      result.PageSize,
		TotalItems: result.TotalItems,
	})
}

// GetByID handles GET /users/{id}
func (h *userHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "invalid user id", nil)
		return
	}

	result, err := h.userService.GetUser(ctx, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete handles DELETE /users/{id}
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "invalid user id", nil)
		return
	}

	if err := h.userService.DeleteUser(ctx, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}
