package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"restomenu-be/internal/logger"
	"restomenu-be/internal/menu"
	"restomenu-be/internal/order"
	"restomenu-be/internal/validation"

	"go.uber.org/zap"
)

const statusUnprocessable = http.StatusUnprocessableEntity

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail mirrors the {"detail": ...} error envelope of the API.
func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

// writeServiceError maps the two domain error kinds onto responses:
// validation failures become 422 with the violation list, not-found
// sentinels become 404. Anything else is a 500 and gets logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := validation.AsError(err); ok {
		writeDetail(w, statusUnprocessable, ve.Violations)
		return
	}

	switch {
	case errors.Is(err, menu.ErrItemNotFound):
		writeDetail(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, order.ErrOrderNotFound):
		writeDetail(w, http.StatusNotFound, "Order not found")
	default:
		logger.FromCtx(r.Context()).Error("unhandled service error", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// writeBodyError reports an undecodable request body as a single violation
// so the failure space stays within the documented error kinds.
func writeBodyError(w http.ResponseWriter) {
	writeDetail(w, statusUnprocessable, []validation.Violation{
		{Field: "body", Message: "must be a valid JSON document"},
	})
}

// writeIDError reports a malformed path id.
func writeIDError(w http.ResponseWriter) {
	writeDetail(w, statusUnprocessable, []validation.Violation{
		{Field: "id", Message: "must be a positive integer"},
	})
}
