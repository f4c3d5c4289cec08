package handler

import (
	"encoding/json"
	"net/http"

	"medimart/internal/model"
	"medimart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ConsultationHandler handles doctor and consultation HTTP requests.
type ConsultationHandler struct {
	service service.ConsultationService
	logger  zerolog.Logger
}

// NewConsultationHandler creates a new consultation handler.
func NewConsultationHandler(service service.ConsultationService, logger zerolog.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		service: service,
		logger:  logger.With().Str("handler", "consultation").Logger(),
	}
}

// ListDoctors handles GET /api/doctors requests. Accepts optional
// "city" and "specialization" query parameters.
func (h *ConsultationHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	specialization := r.URL.Query().Get("specialization")

	doctors, err := h.service.ListDoctors(r.Context(), city, specialization)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doctors)
}

// Book handles POST /api/consultations requests.
func (h *ConsultationHandler) Book(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r, h.logger)
	if !ok {
		return
	}

	var req model.BookConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	id, err := h.service.Book(r.Context(), userID, &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":        "Appointment booked successfully",
		"consultationId": id,
	})
}

// List handles GET /api/consultations requests.
func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r, h.logger)
	if !ok {
		return
	}

	consults, err := h.service.ListConsultations(r.Context(), userID)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, consults)
}

// Update handles PUT /api/consultations/{id} requests, moving the
// appointment to a new date and time slot.
func (h *ConsultationHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r, h.logger)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid consultation ID format", h.logger)
		return
	}

	var req model.RescheduleConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.Reschedule(r.Context(), id, userID, &req); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Appointment updated successfully",
	})
}

// Cancel handles PUT /api/consultations/{id}/cancel requests.
func (h *ConsultationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r, h.logger)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid consultation ID format", h.logger)
		return
	}

	if err := h.service.Cancel(r.Context(), id, userID); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Appointment cancelled successfully",
	})
}
