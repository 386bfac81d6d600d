package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrPartyNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPartyType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAsOfDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDisplayName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownEventKind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDayQuery parses an ISO day (YYYY-MM-DD) query parameter.
func parseDayQuery(r *http.Request, key string) (time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", val)
}
