package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/metrics"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeletedCountResponse reports how many rows a bulk delete removed
type DeletedCountResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// respondJSON encodes payload into a pooled buffer before writing so an
// encoding failure never leaves a half-written body.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to a status code, logs it at a
// level matching its kind and counts it in the ledger error metric.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, kind, message := mapServiceError(err)
	metrics.RecordLedgerError(op, kind)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "operation", op, "kind", kind, "error", err)
	} else {
		log.Warn("Request rejected", "operation", op, "kind", kind, "error", err)
	}

	respondError(w, status, message)
}

// mapServiceError returns the HTTP status, metric kind label and client
// message for err. Business errors carry safe, identifying messages;
// persistence failures are reported generically.
func mapServiceError(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, KindUnknown, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrThresholdConflict):
		return http.StatusConflict, KindConflict, err.Error()
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusServiceUnavailable, KindPersistence, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, KindNotFound, err.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, KindValidation, err.Error()
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusConflict, KindInsufficientBalance, err.Error()
	default:
		return http.StatusInternalServerError, KindUnknown, ErrMsgGenericServerError
	}
}
