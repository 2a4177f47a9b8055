package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// CampaignRepository persists campaigns for the management API.
type CampaignRepository interface {
	Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	// Get returns a campaign by id, or nil when unknown.
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListByAdvertiser returns the advertiser's campaigns ordered by id.
	// limit <= 0 disables the limit.
	ListByAdvertiser(ctx context.Context, advertiserID uuid.UUID, limit, offset int) ([]domain.Campaign, error)
	Update(ctx context.Context, c domain.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientRepository persists client profiles.
type ClientRepository interface {
	// Get returns a client by id, or nil when unknown.
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	// Upsert creates or replaces every client in one transaction.
	Upsert(ctx context.Context, clients []domain.Client) error
}

// AdvertiserRepository persists advertisers.
type AdvertiserRepository interface {
	// Get returns an advertiser by id, or nil when unknown.
	Get(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error)
	// Upsert creates or replaces every advertiser in one transaction.
	Upsert(ctx context.Context, advertisers []domain.Advertiser) error
}

// ScoreRepository persists ML scores in the system of record.
type ScoreRepository interface {
	Upsert(ctx context.Context, score domain.MLScore) error
}

// StatsRepository reads accumulated daily statistics. Writing goes through
// AdRepository.RecordEvent.
type StatsRepository interface {
	// CampaignDaily returns the campaign's buckets ordered by day.
	CampaignDaily(ctx context.Context, campaignID uuid.UUID) ([]domain.DailyStats, error)
	// AdvertiserDaily returns the buckets of every campaign owned by the
	// advertiser.
	AdvertiserDaily(ctx context.Context, advertiserID uuid.UUID) ([]domain.DailyStats, error)
}
