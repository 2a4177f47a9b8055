package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/IvanSaydyashev/AdEngine/internal/core/auction"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// writeJSON encodes v as the response body with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and give up on the response
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeDetail writes a {"detail": ...} body, the shape clients of this API
// expect for non-2xx outcomes.
func (h *Handler) writeDetail(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, map[string]string{"detail": detail})
}

// respondError maps usecase errors onto HTTP statuses. Distinguished
// outcomes (missing entities, empty inventory, rejected text, backward
// clock) carry their message; everything else is logged and hidden behind a
// generic 500.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrClientNotFound),
		errors.Is(err, port.ErrAdvertiserNotFound),
		errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrStatsNotFound),
		errors.Is(err, port.ErrNoInventory):
		h.writeDetail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrDateInPast),
		errors.Is(err, port.ErrModerationRejected),
		errors.Is(err, auction.ErrInvalidInput):
		h.writeDetail(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		h.writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}
