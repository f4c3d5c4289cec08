package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreHandler_Nearby(t *testing.T) {
	logger := zerolog.Nop()
	medicineID := uuid.New()

	hasMedicine := true
	stock := 4
	annotated := []model.NearbyStore{
		{
			Store:       model.Store{ID: uuid.New(), Name: "Apollo Pharmacy", Location: "Pune"},
			HasMedicine: &hasMedicine,
			Stock:       &stock,
		},
	}

	tests := []struct {
		name           string
		query          string
		mockLocation   string
		mockMedicineID uuid.UUID
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Location and medicine",
			query:          "?location=Pune&medicineId=" + medicineID.String(),
			mockLocation:   "Pune",
			mockMedicineID: medicineID,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "No filters",
			query:          "",
			mockLocation:   "",
			mockMedicineID: uuid.Nil,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Bad medicine ID",
			query:          "?medicineId=nope",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockStoreService)
			h := NewStoreHandler(mockService, logger)

			if tt.expectService {
				mockService.On("FindNearby", mock.Anything, tt.mockLocation, tt.mockMedicineID).
					Return(annotated, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/stores/nearby"+tt.query, nil)
			w := httptest.NewRecorder()

			h.Nearby(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp []model.NearbyStore
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Len(t, resp, 1)
				require.NotNil(t, resp[0].HasMedicine)
				assert.True(t, *resp[0].HasMedicine)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestStoreHandler_Nearby_OmitsAnnotationWithoutMedicine(t *testing.T) {
	logger := zerolog.Nop()

	plain := []model.NearbyStore{
		{Store: model.Store{ID: uuid.New(), Name: "MedPlus", Location: "Pune"}},
	}

	mockService := new(MockStoreService)
	h := NewStoreHandler(mockService, logger)

	mockService.On("FindNearby", mock.Anything, "Pune", uuid.Nil).Return(plain, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stores/nearby?location=Pune", nil)
	w := httptest.NewRecorder()

	h.Nearby(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Annotation fields must be absent from the JSON, not null.
	assert.NotContains(t, w.Body.String(), "hasMedicine")
	assert.NotContains(t, w.Body.String(), "stock")
}

func TestStoreHandler_Stock(t *testing.T) {
	logger := zerolog.Nop()
	recordID := uuid.New()

	body := model.StockRequest{
		StoreID:       uuid.New(),
		MedicineID:    uuid.New(),
		StockQuantity: 5,
		ExpiryDate:    "2026-12-31",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    body,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Invalid body",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Unknown medicine",
			requestBody:    body,
			mockError:      model.ErrMedicineNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockStoreService)
			h := NewStoreHandler(mockService, logger)

			if tt.expectService {
				ret := recordID
				if tt.mockError != nil {
					ret = uuid.Nil
				}
				mockService.On("Stock", mock.Anything, mock.AnythingOfType("*model.StockRequest")).
					Return(ret, tt.mockError)
			}

			var buf bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				buf.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&buf).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/stores/inventory", &buf)
			w := httptest.NewRecorder()

			h.Stock(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestStoreHandler_UpdateInventory(t *testing.T) {
	logger := zerolog.Nop()
	recordID := uuid.New()

	body := model.UpdateInventoryRequest{
		StockQuantity: 10,
		ExpiryDate:    "2027-01-31",
		Price:         99.99,
		IsAvailable:   true,
	}

	tests := []struct {
		name           string
		recordID       string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			recordID:       recordID.String(),
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid ID",
			recordID:       "nope",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Not found",
			recordID:       recordID.String(),
			mockError:      model.ErrInventoryNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockStoreService)
			h := NewStoreHandler(mockService, logger)

			if tt.expectService {
				mockService.On("UpdateInventory", mock.Anything, recordID, mock.AnythingOfType("*model.UpdateInventoryRequest")).
					Return(tt.mockError)
			}

			var buf bytes.Buffer
			require.NoError(t, json.NewEncoder(&buf).Encode(body))

			req := httptest.NewRequest(http.MethodPut, "/api/stores/inventory/"+tt.recordID, &buf)
			req = withURLParam(req, "id", tt.recordID)
			w := httptest.NewRecorder()

			h.UpdateInventory(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
