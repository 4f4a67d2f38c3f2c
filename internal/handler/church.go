// internal/handler/church.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Braham27/churchflow-sub002/internal/middleware"
	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
)

type ChurchHandler struct {
	churchService *service.ChurchService
}

func NewChurchHandler(churchService *service.ChurchService) *ChurchHandler {
	return &ChurchHandler{churchService: churchService}
}

// CreateChurch is mounted outside the tenant middleware: the caller has no
// membership yet.
func (h *ChurchHandler) CreateChurch(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input service.CreateChurchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	church, err := h.churchService.Create(r.Context(), userID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, church)
}

func (h *ChurchHandler) GetChurch(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	church, err := h.churchService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, church)
}

func (h *ChurchHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.UpdateSettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	church, err := h.churchService.UpdateSettings(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, church)
}

func (h *ChurchHandler) Invite(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.InviteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	inv, err := h.churchService.Invite(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, inv)
}

// AcceptInvitation is mounted outside the tenant middleware like
// CreateChurch: the invitee has no membership until acceptance.
func (h *ChurchHandler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		respondWithError(w, http.StatusBadRequest, "Token is required")
		return
	}

	m, err := h.churchService.AcceptInvitation(r.Context(), userID, token)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, m)
}
