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

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a campaign, letting the database assign the id.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	targeting, err := encodeTargeting(c.Targeting)
	if err != nil {
		return nil, fmt.Errorf("encode targeting: %w", err)
	}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO campaign
             (advertiser_id, impressions_limit, clicks_limit, cost_per_impression,
              cost_per_click, ad_title, ad_text, start_date, end_date, targeting)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING campaign_id`,
		c.AdvertiserID, c.ImpressionsLimit, c.ClicksLimit, c.CostPerImpression,
		c.CostPerClick, c.AdTitle, c.AdText, c.StartDate, c.EndDate, targeting).
		Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get returns a campaign by id, or nil when unknown.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
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

// ListByAdvertiser returns the advertiser's campaigns ordered by id.
// limit <= 0 returns everything.
func (r *CampaignRepository) ListByAdvertiser(ctx context.Context, advertiserID uuid.UUID, limit, offset int) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE advertiser_id = $1 ORDER BY campaign_id`
	args := []any{advertiserID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectCampaign)
}

// Update replaces every mutable column of the campaign.
func (r *CampaignRepository) Update(ctx context.Context, c domain.Campaign) error {
	targeting, err := encodeTargeting(c.Targeting)
	if err != nil {
		return fmt.Errorf("encode targeting: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE campaign SET
             impressions_limit = $2, clicks_limit = $3, cost_per_impression = $4,
             cost_per_click = $5, ad_title = $6, ad_text = $7, start_date = $8,
             end_date = $9, targeting = $10
         WHERE campaign_id = $1`,
		c.ID, c.ImpressionsLimit, c.ClicksLimit, c.CostPerImpression,
		c.CostPerClick, c.AdTitle, c.AdText, c.StartDate, c.EndDate, targeting)
	return err
}

// Delete removes a campaign and, through cascading constraints, its stats
// and views.
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaign WHERE campaign_id = $1`, id)
	return err
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)
