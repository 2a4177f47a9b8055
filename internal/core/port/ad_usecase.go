package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// AdUseCase is the primary port of the delivery path: one auction per
// impression request, one ledger write per click. Mock implementations can
// be generated from this interface for testing.
type AdUseCase interface {
	// ServeAd runs the auction for the client on the current simulated day
	// and returns the winning ad. The auction runs on every call; the
	// impression is counted only for the client's first view of the day.
	// Returns ErrClientNotFound or ErrNoInventory as distinguished outcomes.
	ServeAd(ctx context.Context, clientID uuid.UUID) (*AdResponse, error)
	// RegisterClick records a click on the campaign for the current day.
	// Returns ErrCampaignNotFound when the campaign does not exist.
	RegisterClick(ctx context.Context, campaignID, clientID uuid.UUID) error
}

// AdResponse is the ad returned to a client. A DTO for the HTTP layer.
type AdResponse struct {
	AdID         uuid.UUID
	AdTitle      string
	AdText       string
	AdvertiserID uuid.UUID
}

// CampaignUseCase manages an advertiser's campaigns.
type CampaignUseCase interface {
	Create(ctx context.Context, draft CampaignDraft) (*domain.Campaign, error)
	// List returns a page of the advertiser's campaigns. size/page are
	// optional; nil means "all" and "first" respectively.
	List(ctx context.Context, advertiserID uuid.UUID, size, page *int) ([]domain.Campaign, error)
	Get(ctx context.Context, advertiserID, campaignID uuid.UUID) (*domain.Campaign, error)
	Update(ctx context.Context, advertiserID, campaignID uuid.UUID, upd CampaignUpdate) (*domain.Campaign, error)
	Delete(ctx context.Context, advertiserID, campaignID uuid.UUID) error
}

// CampaignDraft is the input for creating a campaign. When GenerateText is
// set the ad text is produced by the text service; otherwise the provided
// AdText is moderated and must be accepted.
type CampaignDraft struct {
	AdvertiserID      uuid.UUID
	ImpressionsLimit  int
	ClicksLimit       int
	CostPerImpression float64
	CostPerClick      float64
	AdTitle           string
	AdText            string
	StartDate         int
	EndDate           int
	Targeting         *domain.Targeting
	GenerateText      bool
}

// CampaignUpdate carries the mutable fields of a campaign; nil leaves a
// field unchanged. Targeting is always replaced, including with nil, which
// clears the rule. Limits and flight dates are ignored once the campaign has
// started.
type CampaignUpdate struct {
	ImpressionsLimit  *int
	ClicksLimit       *int
	CostPerImpression *float64
	CostPerClick      *float64
	AdTitle           *string
	AdText            *string
	StartDate         *int
	EndDate           *int
	Targeting         *domain.Targeting
}

// DirectoryUseCase maintains clients, advertisers and ML scores.
type DirectoryUseCase interface {
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	UpsertClients(ctx context.Context, clients []domain.Client) error
	GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error)
	UpsertAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error
	// UpsertScore stores the score in the system of record and writes it
	// through to the cache. Both parties must already exist.
	UpsertScore(ctx context.Context, score domain.MLScore) error
}

// StatsSummary aggregates a set of daily buckets. Conversion is
// clicks/impressions as a percentage, 0 when there were no impressions.
type StatsSummary struct {
	Impressions      int64
	Clicks           int64
	Conversion       float64
	SpentImpressions float64
	SpentClicks      float64
	SpentTotal       float64
}

// StatsUseCase exposes aggregated engagement statistics.
type StatsUseCase interface {
	CampaignSummary(ctx context.Context, campaignID uuid.UUID) (*StatsSummary, error)
	AdvertiserSummary(ctx context.Context, advertiserID uuid.UUID) (*StatsSummary, error)
	CampaignDaily(ctx context.Context, campaignID uuid.UUID) ([]domain.DailyStats, error)
	AdvertiserDaily(ctx context.Context, advertiserID uuid.UUID) ([]domain.DailyStats, error)
}

// TimeUseCase advances the simulated clock.
type TimeUseCase interface {
	Advance(ctx context.Context, day int) (int, error)
}
