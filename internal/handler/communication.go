// internal/handler/communication.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
)

type CommunicationHandler struct {
	commService *service.CommunicationService
}

func NewCommunicationHandler(commService *service.CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{commService: commService}
}

func (h *CommunicationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.BroadcastInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	notification, err := h.commService.Broadcast(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, notification)
}

func (h *CommunicationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	offset, limit := pagination(r)
	notifications, total, err := h.commService.ListNotifications(r.Context(), id, offset, limit)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        notifications,
		Total:        total,
	})
}

type emailMembersResponse struct {
	BaseResponse
	Sent int `json:"sent"`
}

func (h *CommunicationHandler) EmailMembers(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.EmailMembersInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	sent, err := h.commService.EmailMembers(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, emailMembersResponse{
		BaseResponse: BaseResponse{Ok: true},
		Sent:         sent,
	})
}
