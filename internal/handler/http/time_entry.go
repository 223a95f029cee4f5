package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/timeentry"
	"github.com/zeitgrid/worktime-backend-go/internal/handler/http/middleware"
	"github.com/zeitgrid/worktime-backend-go/internal/handler/http/response"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/validator"
)

type TimeEntryHandler interface {
	ListForDay(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &timeEntryHandlerImpl{timeEntryService: timeEntryService}
}

// ListForDay handles GET /time-entries/{user_id}?date=YYYY-MM-DD
func (h *timeEntryHandlerImpl) ListForDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := chi.URLParam(r, "user_id")
	if !validator.IsValidUUID(userID) {
		response.BadRequest(w, "invalid user id", nil)
		return
	}

	day, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.timeEntryService.ListForDay(ctx, userID, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /time-entries?force=bool
func (h *timeEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorID(r)
	if !ok {
		response.Unauthorized(w, "missing user identity")
		return
	}

	var req timeentry.CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.ActorID = actorID
	req.Force = r.URL.Query().Get("force") == "true"

	result, err := h.timeEntryService.CreateEntry(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created", result)
}

// Delete handles DELETE /time-entries/{id}?force=bool
func (h *timeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorID(r)
	if !ok {
		response.Unauthorized(w, "missing user identity")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "invalid entry id", nil)
		return
	}
	force := r.URL.Query().Get("force") == "true"

	if err := h.timeEntryService.DeleteEntry(ctx, id, actorID, force); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted", nil)
}
