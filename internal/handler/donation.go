// internal/handler/donation.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
)

type DonationHandler struct {
	donationService *service.DonationService
}

func NewDonationHandler(donationService *service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

func (h *DonationHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.FundInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	fund, err := h.donationService.CreateFund(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, fund)
}

func (h *DonationHandler) ListFunds(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	funds, err := h.donationService.ListFunds(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, funds)
}

func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.DonationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	donation, err := h.donationService.Create(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, donation)
}

func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	offset, limit := pagination(r)
	donations, total, err := h.donationService.List(r.Context(), id, offset, limit)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        donations,
		Total:        total,
	})
}
