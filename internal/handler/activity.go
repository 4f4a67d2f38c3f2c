// internal/handler/activity.go
package handler

import (
	"net/http"

	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	offset, limit := pagination(r)
	entries, total, err := h.activityService.List(r.Context(), id, offset, limit)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        entries,
		Total:        total,
	})
}
