package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// All contended writes are single statements, so concurrent requests
// serialize on row-level locks without explicit transactions.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// GetClient returns a client profile, or nil when the id is unknown.
func (r *AdRepository) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var c domain.Client
	err := r.pool.QueryRow(ctx,
		`SELECT client_id, login, age, location, gender FROM client WHERE client_id = $1`, id).
		Scan(&c.ID, &c.Login, &c.Age, &c.Location, &c.Gender)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCampaign returns a campaign by id, or nil when unknown.
func (r *AdRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaign WHERE campaign_id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, collectCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ActiveCampaigns returns every campaign whose flight covers day, ordered by
// id so the auction's tie-break order is deterministic.
func (r *AdRepository) ActiveCampaigns(ctx context.Context, day int) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaign
         WHERE start_date <= $1 AND end_date >= $1
         ORDER BY campaign_id`, day)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectCampaign)
}

// LifetimeImpressions sums impressions across all daily buckets per
// campaign. Campaigns that never recorded an event are absent.
func (r *AdRepository) LifetimeImpressions(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(campaignIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id, COALESCE(SUM(impressions_count), 0)
         FROM daily_stat WHERE campaign_id = ANY($1) GROUP BY campaign_id`, campaignIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make(map[uuid.UUID]int64, len(campaignIDs))
	for rows.Next() {
		var (
			id    uuid.UUID
			total int64
		)
		if err = rows.Scan(&id, &total); err != nil {
			return nil, err
		}
		views[id] = total
	}
	return views, rows.Err()
}

// ScoresForClient returns all recorded scores for one client.
func (r *AdRepository) ScoresForClient(ctx context.Context, clientID uuid.UUID) ([]domain.MLScore, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT client_id, advertiser_id, score FROM ml_score WHERE client_id = $1`, clientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MLScore, error) {
		var s domain.MLScore
		err := row.Scan(&s.ClientID, &s.AdvertiserID, &s.Score)
		return s, err
	})
}

// RegisterView is first-writer-wins on the (client_id, view_date) unique
// index: the insert that loses the race affects zero rows and reports false.
func (r *AdRepository) RegisterView(ctx context.Context, view domain.AdView) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO ad_view (view_id, campaign_id, client_id, view_date)
         VALUES ($1, $2, $3, $4)
         ON CONFLICT (client_id, view_date) DO NOTHING`,
		view.ID, view.CampaignID, view.ClientID, view.ViewDate)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RecordEvent folds one event into the (campaign, day) bucket. The upsert is
// a single statement, so concurrent writers to the same bucket serialize on
// the row and no increment is lost.
func (r *AdRepository) RecordEvent(ctx context.Context, ev domain.StatEvent) error {
	var query string
	var spent float64
	switch ev.Kind {
	case domain.EventImpression:
		query = `INSERT INTO daily_stat (campaign_id, day, impressions_count, clicks_count, spent_impressions, spent_clicks)
                 VALUES ($1, $2, 1, 0, $3, 0)
                 ON CONFLICT (campaign_id, day) DO UPDATE SET
                     impressions_count = daily_stat.impressions_count + 1,
                     spent_impressions = daily_stat.spent_impressions + EXCLUDED.spent_impressions`
		spent = ev.CostPerImpression
	case domain.EventClick:
		query = `INSERT INTO daily_stat (campaign_id, day, impressions_count, clicks_count, spent_impressions, spent_clicks)
                 VALUES ($1, $2, 0, 1, 0, $3)
                 ON CONFLICT (campaign_id, day) DO UPDATE SET
                     clicks_count = daily_stat.clicks_count + 1,
                     spent_clicks = daily_stat.spent_clicks + EXCLUDED.spent_clicks`
		spent = ev.CostPerClick
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	_, err := r.pool.Exec(ctx, query, ev.CampaignID, ev.Day, spent)
	return err
}

// compile-time interface check
var _ port.AdRepository = (*AdRepository)(nil)
