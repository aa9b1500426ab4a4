package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinilab/clinilab/internal/adapter/http/dto"
	"github.com/clinilab/clinilab/internal/domain"
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
	case errors.Is(err, domain.ErrReceiptNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrExpenseNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOperationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCashCutNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBranchRequired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDiscountExceedsSubtotal):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTotalMismatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPaymentExceedsDue):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrReceiptNotPayable):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidOperationType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidConcept):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNegativeInitialCash):
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

// parseDateQuery parses a date query parameter. A missing or malformed
// value yields the zero time, which downstream code treats as "today".
func parseDateQuery(r *http.Request, key string) time.Time {
	val := r.URL.Query().Get(key)
	if val == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t
	}
	return time.Time{}
}

// parseDecimalQuery parses a decimal query parameter, zero when absent or
// malformed.
func parseDecimalQuery(r *http.Request, key string) decimal.Decimal {
	val := r.URL.Query().Get(key)
	if val == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero
	}
	return d
}
