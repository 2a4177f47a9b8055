package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleCampaignStats returns lifetime totals for one campaign.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "campaignId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	s, err := h.svc.Stats.CampaignSummary(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summaryFromPort(*s))
}

// handleCampaignDailyStats returns the per-day buckets of one campaign.
func (h *Handler) handleCampaignDailyStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "campaignId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	daily, err := h.svc.Stats.CampaignDaily(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dailyFromDomain(daily))
}

// handleAdvertiserStats returns totals aggregated across all campaigns of
// one advertiser.
func (h *Handler) handleAdvertiserStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "advertiserId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid advertiser id")
		return
	}
	s, err := h.svc.Stats.AdvertiserSummary(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summaryFromPort(*s))
}

// handleAdvertiserDailyStats returns the per-day buckets of every campaign
// of one advertiser.
func (h *Handler) handleAdvertiserDailyStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "advertiserId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid advertiser id")
		return
	}
	daily, err := h.svc.Stats.AdvertiserDaily(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dailyFromDomain(daily))
}
