package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medimart/internal/middleware"
	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Postgres error codes surfaced to clients. Referential-integrity
// failures are deliberately absent: a dangling store or medicine
// reference surfaces as an opaque server error.
const pgUniqueViolation = "23505"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Message: message})
}

// respondError maps a service error onto an HTTP status and writes it.
// Domain errors carry their own client-safe message; anything else is a
// plain 500 so internals never leak.
func respondError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, statusForCode(domainErr.Code), model.ErrorResponse{
			Message: domainErr.Message,
			Detail:  domainErr.Code,
		})
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		writeJSON(w, http.StatusConflict, model.ErrorResponse{
			Message: "Record already exists",
			Detail:  model.ErrCodeDuplicate,
		})
		return
	}

	logger.Error().Err(err).Msg("unhandled service error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Message: "Server error",
		Detail:  model.ErrCodeInternalError,
	})
}

// authedUser pulls the authenticated user from the request context.
// Writes a 401 and returns false when the auth middleware did not run.
func authedUser(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required", logger)
		return uuid.Nil, false
	}
	return userID, true
}

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeValidation, model.ErrCodeInvalidQuantity, model.ErrCodeTotalMismatch:
		return http.StatusBadRequest
	case model.ErrCodeOrderNotFound, model.ErrCodeMedicineNotFound, model.ErrCodeStoreNotFound,
		model.ErrCodeInventoryNotFound, model.ErrCodeCartItemNotFound,
		model.ErrCodeDoctorNotFound, model.ErrCodeConsultNotFound:
		return http.StatusNotFound
	case model.ErrCodeDuplicate:
		return http.StatusConflict
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
