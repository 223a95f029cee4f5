package http

import (
	"net/http"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/policy"
	"github.com/zeitgrid/worktime-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetServerStore(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	policyRepo policy.ServerPolicyRepository
}

func NewSettingsHandler(policyRepo policy.ServerPolicyRepository) SettingsHandler {
	return &settingsHandlerImpl{policyRepo: policyRepo}
}

// GetServerStore handles GET /settings/server-store
func (h *settingsHandlerImpl) GetServerStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.policyRepo.Get(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policy.ToServerPolicyResponse(p))
}
