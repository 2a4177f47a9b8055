package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// Services bundles the application ports the HTTP layer exposes.
type Services struct {
	Ads       port.AdUseCase
	Campaigns port.CampaignUseCase
	Directory port.DirectoryUseCase
	Stats     port.StatsUseCase
	Time      port.TimeUseCase
	Text      port.TextService
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the usecases that execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Get("/ads", h.handleServeAd)
	r.Post("/ads/{adId}/click", h.handleAdClick)

	r.Post("/clients/bulk", h.handleClientsBulk)
	r.Get("/clients/{clientId}", h.handleGetClient)

	r.Post("/advertisers/bulk", h.handleAdvertisersBulk)
	r.Get("/advertisers/{advertiserId}", h.handleGetAdvertiser)
	r.Post("/ml-scores", h.handleUpsertScore)

	r.Route("/advertisers/{advertiserId}/campaigns", func(r chi.Router) {
		r.Post("/", h.handleCreateCampaign)
		r.Get("/", h.handleListCampaigns)
		r.Get("/{campaignId}", h.handleGetCampaign)
		r.Put("/{campaignId}", h.handleUpdateCampaign)
		r.Delete("/{campaignId}", h.handleDeleteCampaign)
	})

	r.Get("/stats/campaigns/{campaignId}", h.handleCampaignStats)
	r.Get("/stats/campaigns/{campaignId}/daily", h.handleCampaignDailyStats)
	r.Get("/stats/advertisers/{advertiserId}/campaigns/", h.handleAdvertiserStats)
	r.Get("/stats/advertisers/{advertiserId}/campaigns/daily", h.handleAdvertiserDailyStats)

	r.Post("/time/advance", h.handleTimeAdvance)

	r.Post("/llm-action/validate", h.handleTextValidate)
	r.Post("/llm-action/generate", h.handleTextGenerate)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
