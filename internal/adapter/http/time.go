package httpadapter

import (
	"encoding/json"
	"net/http"
)

// handleTimeAdvance sets the simulated current day. Moving the clock
// backward results in HTTP 400.
func (h *Handler) handleTimeAdvance(w http.ResponseWriter, r *http.Request) {
	var req timeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.CurrentDate == nil || *req.CurrentDate < 0 {
		h.writeDetail(w, http.StatusBadRequest, "current_date must be a non-negative integer")
		return
	}

	day, err := h.svc.Time.Advance(r.Context(), *req.CurrentDate)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"current_date": day})
}
