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

// StoreHandler handles store and inventory HTTP requests.
type StoreHandler struct {
	service service.StoreService
	logger  zerolog.Logger
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(service service.StoreService, logger zerolog.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		logger:  logger.With().Str("handler", "store").Logger(),
	}
}

// Nearby handles GET /api/stores/nearby requests. Accepts optional
// "location" and "medicineId" query parameters.
func (h *StoreHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	medicineID := uuid.Nil
	if raw := r.URL.Query().Get("medicineId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid medicine ID format", h.logger)
			return
		}
		medicineID = parsed
	}

	stores, err := h.service.FindNearby(r.Context(), location, medicineID)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stores)
}

// List handles GET /api/stores requests.
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stores)
}

// Inventory handles GET /api/stores/{id}/inventory requests.
func (h *StoreHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	storeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid store ID format", h.logger)
		return
	}

	items, err := h.service.ListInventory(r.Context(), storeID)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Stock handles POST /api/stores/inventory requests.
func (h *StoreHandler) Stock(w http.ResponseWriter, r *http.Request) {
	var req model.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	recordID, err := h.service.Stock(r.Context(), &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Stock added successfully",
		"inventoryId": recordID,
	})
}

// UpdateInventory handles PUT /api/stores/inventory/{id} requests.
func (h *StoreHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid inventory ID format", h.logger)
		return
	}

	var req model.UpdateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateInventory(r.Context(), recordID, &req); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Inventory updated successfully",
	})
}
