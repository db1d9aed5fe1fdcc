package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mulisa/vsla-ledger/internal/adapter/http/dto"
	"github.com/mulisa/vsla-ledger/internal/domain"
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
	case errors.Is(err, domain.ErrLoanNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrMeetingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLoanNotActive),
		errors.Is(err, domain.ErrRepaymentExceedsBalance),
		errors.Is(err, domain.ErrInsufficientSocialFund):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidMeeting),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrZeroAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrInvalidSource),
		errors.Is(err, domain.ErrInvalidFundType),
		errors.Is(err, domain.ErrInvalidInterestRate),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrMissingGroup),
		errors.Is(err, domain.ErrMissingMember):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// optionalQuery returns a pointer to the query value, or nil when absent.
func optionalQuery(r *http.Request, key string) *string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	return &val
}
