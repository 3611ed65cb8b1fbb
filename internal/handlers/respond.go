package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/apperr"
)

// Envelope is the shared response shape: every endpoint answers with it,
// success or failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// RespondData writes a success envelope.
func RespondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

// RespondError maps the error's kind to an HTTP status and writes the
// failure envelope. This is the only place error kinds meet HTTP.
func RespondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}

	writeJSON(w, status, Envelope{
		Success: false,
		Error:   apperr.Message(err),
		Details: apperr.Detail(err),
	})
}

// RespondBadRequest writes a 400 failure envelope with a fixed message,
// for boundary-level rejections that never reach a service.
func RespondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Envelope{Success: false, Error: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		RespondBadRequest(w, "invalid JSON body")
		return false
	}
	return true
}
