package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleCreateCampaign creates a campaign for the advertiser in the path.
// With ?isGenerate=true the ad text is produced by the text service instead
// of being taken from the body.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserID, err := uuid.Parse(chi.URLParam(r, "advertiserId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid advertiser id")
		return
	}
	generate := false
	if v := r.URL.Query().Get("isGenerate"); v != "" {
		if generate, err = strconv.ParseBool(v); err != nil {
			h.writeDetail(w, http.StatusBadRequest, "invalid isGenerate")
			return
		}
	}

	var req createCampaignRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	draft, err := req.toDraft(advertiserID, generate)
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Campaigns.Create(r.Context(), draft)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaignFromDomain(*c))
}

// handleListCampaigns returns a page of the advertiser's campaigns. The
// optional `size` and `page` query parameters control pagination; without
// them everything is returned.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	advertiserID, err := uuid.Parse(chi.URLParam(r, "advertiserId"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid advertiser id")
		return
	}

	var size, page *int
	if size, err = optionalIntQuery(r, "size"); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid size")
		return
	}
	if page, err = optionalIntQuery(r, "page"); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid page")
		return
	}

	campaigns, err := h.svc.Campaigns.List(r.Context(), advertiserID, size, page)
	if err != nil {
		h.respondError(w, err)
		return
	}

	out := make([]campaignPayload, len(campaigns))
	for i, c := range campaigns {
		out[i] = campaignFromDomain(c)
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleGetCampaign returns one campaign of the advertiser.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserID, campaignID, ok := h.campaignPath(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Campaigns.Get(r.Context(), advertiserID, campaignID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignFromDomain(*c))
}

// handleUpdateCampaign applies the mutable campaign fields. Limits and
// flight dates are frozen while the campaign is running.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserID, campaignID, ok := h.campaignPath(w, r)
	if !ok {
		return
	}

	var req updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	upd, err := req.toUpdate()
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Campaigns.Update(r.Context(), advertiserID, campaignID, upd)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignFromDomain(*c))
}

// handleDeleteCampaign removes the advertiser's campaign.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserID, campaignID, ok := h.campaignPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.Campaigns.Delete(r.Context(), advertiserID, campaignID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) campaignPath(w http.ResponseWriter, r *http.Request) (advertiserID, campaignID uuid.UUID, ok bool) {
	var err error
	if advertiserID, err = uuid.Parse(chi.URLParam(r, "advertiserId")); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid advertiser id")
		return advertiserID, campaignID, false
	}
	if campaignID, err = uuid.Parse(chi.URLParam(r, "campaignId")); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid campaign id")
		return advertiserID, campaignID, false
	}
	return advertiserID, campaignID, true
}

func optionalIntQuery(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
