package handler

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"medimart/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "Domain error keeps its code and status",
			err:            fmt.Errorf("cancel order: %w", model.ErrOrderNotFound),
			expectedStatus: 404,
			expectedDetail: model.ErrCodeOrderNotFound,
		},
		{
			name:           "Unique violation maps to conflict",
			err:            fmt.Errorf("create medicine: %w", &pgconn.PgError{Code: "23505"}),
			expectedStatus: 409,
			expectedDetail: model.ErrCodeDuplicate,
		},
		{
			name:           "Foreign key violation stays an opaque server error",
			err:            fmt.Errorf("failed to create order item: %w", &pgconn.PgError{Code: "23503"}),
			expectedStatus: 500,
			expectedDetail: model.ErrCodeInternalError,
		},
		{
			name:           "Unclassified error is an opaque server error",
			err:            fmt.Errorf("connection reset"),
			expectedStatus: 500,
			expectedDetail: model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			respondError(w, tt.err, zerolog.Nop())

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp model.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedDetail, resp.Detail)
			if tt.expectedStatus == 500 {
				assert.Equal(t, "Server error", resp.Message)
			}
		})
	}
}
