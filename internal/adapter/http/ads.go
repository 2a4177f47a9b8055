package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleServeAd runs the auction for the client given by the `client_id`
// query parameter and returns the winning ad. Selection runs on every call;
// the impression is only counted once per (client, day). No matching
// campaign results in HTTP 404, unknown clients too.
func (h *Handler) handleServeAd(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(r.URL.Query().Get("client_id"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid client_id")
		return
	}

	ad, err := h.svc.Ads.ServeAd(r.Context(), clientID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, adResponse{
		AdID:         ad.AdID,
		AdTitle:      ad.AdTitle,
		AdText:       ad.AdText,
		AdvertiserID: ad.AdvertiserID,
	})
}

// handleAdClick records a click on the ad given by the {adId} path
// parameter. The body carries the clicking client's id. Unknown campaigns
// result in HTTP 404; success is HTTP 204.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	adID, err := uuid.Parse(chi.URLParam(r, "adId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid ad id")
		return
	}
	var req clickRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err = h.svc.Ads.RegisterClick(r.Context(), adID, req.ClientID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
