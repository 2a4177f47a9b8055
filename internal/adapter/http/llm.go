package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// handleTextValidate moderates an ad text and returns the verdict as
// {"status": "accept"} or {"status": "reject", "reason": ...}.
func (h *Handler) handleTextValidate(w http.ResponseWriter, r *http.Request) {
	var req validateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AdText == nil {
		h.writeDetail(w, http.StatusBadRequest, "ad_text is required")
		return
	}

	res, err := h.svc.Text.Validate(r.Context(), *req.AdText)
	if err != nil {
		h.respondError(w, err)
		return
	}

	body := map[string]string{"status": "accept"}
	if !res.Accepted {
		body = map[string]string{"status": "reject", "reason": res.Reason}
	}
	h.writeJSON(w, http.StatusOK, body)
}

// handleTextGenerate produces an ad text from the ad name, advertiser name
// and targeting rule.
func (h *Handler) handleTextGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AdName == nil || req.AdvertiserName == nil {
		h.writeDetail(w, http.StatusBadRequest, "ad_name and advertiser_name are required")
		return
	}
	targeting, err := req.Targeting.toDomain()
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.svc.Text.Generate(r.Context(), port.GenerationRequest{
		AdName:         *req.AdName,
		AdvertiserName: *req.AdvertiserName,
		Targeting:      targeting,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"ad_text": text})
}
