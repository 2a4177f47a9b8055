package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// handleAdvertisersBulk creates or updates advertisers in one request.
func (h *Handler) handleAdvertisersBulk(w http.ResponseWriter, r *http.Request) {
	var payload []advertiserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	advertisers := make([]domain.Advertiser, len(payload))
	for i, p := range payload {
		a, err := p.toDomain()
		if err != nil {
			h.writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		advertisers[i] = a
	}

	if err := h.svc.Directory.UpsertAdvertisers(r.Context(), advertisers); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, payload)
}

// handleGetAdvertiser returns one advertiser.
func (h *Handler) handleGetAdvertiser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "advertiserId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid advertiser id")
		return
	}

	a, err := h.svc.Directory.GetAdvertiser(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, advertiserPayload{AdvertiserID: a.ID, Name: a.Name})
}

// handleUpsertScore stores an ML score for a (client, advertiser) pair. Both
// parties must exist. The score is written through to the cache so the next
// auction sees it.
func (h *Handler) handleUpsertScore(w http.ResponseWriter, r *http.Request) {
	var req mlScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	score, err := req.toDomain()
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err = h.svc.Directory.UpsertScore(r.Context(), score); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, req)
}
