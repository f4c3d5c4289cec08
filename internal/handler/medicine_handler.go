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

// MedicineHandler handles medicine catalog HTTP requests.
type MedicineHandler struct {
	service service.MedicineService
	logger  zerolog.Logger
}

// NewMedicineHandler creates a new medicine handler.
func NewMedicineHandler(service service.MedicineService, logger zerolog.Logger) *MedicineHandler {
	return &MedicineHandler{
		service: service,
		logger:  logger.With().Str("handler", "medicine").Logger(),
	}
}

// List handles GET /api/medicines requests.
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	meds, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, meds)
}

// Get handles GET /api/medicines/{id} requests.
func (h *MedicineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid medicine ID format", h.logger)
		return
	}

	med, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, med)
}

// Add handles POST /api/medicines requests.
func (h *MedicineHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.MedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	id, err := h.service.Add(r.Context(), &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Medicine added successfully",
		"medicineId": id,
	})
}
