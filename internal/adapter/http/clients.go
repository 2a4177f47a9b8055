package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// handleClientsBulk creates or updates clients in one request. Any invalid
// entry rejects the whole batch.
func (h *Handler) handleClientsBulk(w http.ResponseWriter, r *http.Request) {
	var payload []clientPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	clients := make([]domain.Client, len(payload))
	for i, p := range payload {
		c, err := p.toDomain()
		if err != nil {
			h.writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		clients[i] = c
	}

	if err := h.svc.Directory.UpsertClients(r.Context(), clients); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, payload)
}

// handleGetClient returns one client profile.
func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid client id")
		return
	}

	c, err := h.svc.Directory.GetClient(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, clientFromDomain(*c))
}
