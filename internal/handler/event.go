// internal/handler/event.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	var input service.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	event, err := h.eventService.Create(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	event, err := h.eventService.Get(r.Context(), id, eventID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, event)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	offset, limit := pagination(r)
	events, total, err := h.eventService.List(r.Context(), id, offset, limit)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        events,
		Total:        total,
	})
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	var input service.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	event, err := h.eventService.Update(r.Context(), id, eventID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	if err := h.eventService.Delete(r.Context(), id, eventID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *EventHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	var input service.CheckInInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	att, err := h.eventService.CheckIn(r.Context(), id, eventID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, att)
}

func (h *EventHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	id, err := tenant.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	var serviceDate time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		serviceDate, err = time.Parse("2006-01-02", raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	rows, err := h.eventService.Attendance(r.Context(), id, eventID, serviceDate)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, rows)
}
