package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// AdRepository is the outbound port of the ad delivery path. Implementations
// must be concurrency-safe; RegisterView and RecordEvent carry the only
// contended state in the system and must not lose updates under concurrent
// writers.
type AdRepository interface {
	// GetClient returns the client profile, or nil when unknown.
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	// GetCampaign returns a campaign by id, or nil when unknown.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ActiveCampaigns returns every campaign whose flight covers day.
	ActiveCampaigns(ctx context.Context, day int) ([]domain.Campaign, error)
	// LifetimeImpressions sums impression counts across all daily buckets
	// for the given campaigns. Campaigns without stats are absent from the
	// result.
	LifetimeImpressions(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	// ScoresForClient returns all recorded (advertiser, score) pairs for one
	// client from the system of record.
	ScoresForClient(ctx context.Context, clientID uuid.UUID) ([]domain.MLScore, error)
	// RegisterView atomically records that the client saw an ad on
	// view.ViewDate. It reports true when this call created the record and
	// false when another view already existed for the (client, day) pair.
	RegisterView(ctx context.Context, view domain.AdView) (bool, error)
	// RecordEvent folds one impression or click into the campaign's daily
	// bucket, creating the bucket lazily. Every call mutates the bucket
	// exactly once.
	RecordEvent(ctx context.Context, ev domain.StatEvent) error
}
