package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/overview"
	"github.com/zeitgrid/worktime-backend-go/internal/handler/http/response"
)

type OverviewHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type overviewHandlerImpl struct {
	overviewService overview.OverviewService
}

func NewOverviewHandler(overviewService overview.OverviewService) OverviewHandler {
	return &overviewHandlerImpl{overviewService: overviewService}
}

// GetOverview handles GET /overview/{user_id}?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *overviewHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := overview.OverviewRequest{
		UserID:    chi.URLParam(r, "user_id"),
		DateStart: r.URL.Query().Get("start"),
		DateEnd:   r.URL.Query().Get("end"),
	}

	records, err := h.overviewService.CalculateOverview(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
