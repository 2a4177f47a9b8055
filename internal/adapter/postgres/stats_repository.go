package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// StatsRepository implements the read side of port.StatsRepository. Writes
// go through AdRepository.RecordEvent.
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository returns a new repository instance.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// CampaignDaily returns the campaign's buckets ordered by day.
func (r *StatsRepository) CampaignDaily(ctx context.Context, campaignID uuid.UUID) ([]domain.DailyStats, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id, day, impressions_count, clicks_count, spent_impressions, spent_clicks
         FROM daily_stat WHERE campaign_id = $1 ORDER BY day`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectDailyStats)
}

// AdvertiserDaily returns the buckets of every campaign the advertiser owns.
func (r *StatsRepository) AdvertiserDaily(ctx context.Context, advertiserID uuid.UUID) ([]domain.DailyStats, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.campaign_id, s.day, s.impressions_count, s.clicks_count, s.spent_impressions, s.spent_clicks
         FROM daily_stat s
         JOIN campaign c ON c.campaign_id = s.campaign_id
         WHERE c.advertiser_id = $1
         ORDER BY s.campaign_id, s.day`, advertiserID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectDailyStats)
}

func collectDailyStats(row pgx.CollectableRow) (domain.DailyStats, error) {
	var d domain.DailyStats
	err := row.Scan(&d.CampaignID, &d.Day, &d.Impressions, &d.Clicks, &d.SpentImpressions, &d.SpentClicks)
	return d, err
}

var _ port.StatsRepository = (*StatsRepository)(nil)
