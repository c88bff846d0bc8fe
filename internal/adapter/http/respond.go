package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adpilot/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps errors from the campaign service onto HTTP
// statuses. Remote platform failures map to 502 with the full error text so
// the operator can decide whether an explicit retry is safe; everything
// unexpected stays a generic 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	var (
		invalid *domain.InvalidTransitionError
		remote  *domain.RemoteAPIError
		publish *domain.PublishError
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Campaign not found")
	case errors.As(err, &invalid):
		writeError(w, http.StatusConflict, invalid.Error())
	case errors.As(err, &publish), errors.As(err, &remote):
		h.logger.Error(op+" error", slog.Any("error", err))
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
