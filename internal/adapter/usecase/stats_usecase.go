package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// StatsUseCase implements port.StatsUseCase over the read side of the daily
// stats ledger.
type StatsUseCase struct {
	stats       port.StatsRepository
	campaigns   port.CampaignRepository
	advertisers port.AdvertiserRepository
}

// NewStatsUseCase creates the statistics usecase.
func NewStatsUseCase(
	stats port.StatsRepository,
	campaigns port.CampaignRepository,
	advertisers port.AdvertiserRepository,
) *StatsUseCase {
	return &StatsUseCase{stats: stats, campaigns: campaigns, advertisers: advertisers}
}

// CampaignSummary returns lifetime totals for one campaign. A campaign that
// exists but has never recorded an event yields ErrStatsNotFound.
func (u *StatsUseCase) CampaignSummary(ctx context.Context, campaignID uuid.UUID) (*port.StatsSummary, error) {
	if err := u.campaignExists(ctx, campaignID); err != nil {
		return nil, err
	}
	daily, err := u.stats.CampaignDaily(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load campaign stats: %w", err)
	}
	if len(daily) == 0 {
		return nil, port.ErrStatsNotFound
	}
	return summarize(daily), nil
}

// AdvertiserSummary aggregates across all of the advertiser's campaigns. An
// advertiser without campaigns yields ErrStatsNotFound; campaigns without
// events yield a zero-valued summary.
func (u *StatsUseCase) AdvertiserSummary(ctx context.Context, advertiserID uuid.UUID) (*port.StatsSummary, error) {
	adv, err := u.advertisers.Get(ctx, advertiserID)
	if err != nil {
		return nil, fmt.Errorf("load advertiser: %w", err)
	}
	if adv == nil {
		return nil, port.ErrAdvertiserNotFound
	}

	campaigns, err := u.campaigns.ListByAdvertiser(ctx, advertiserID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, port.ErrStatsNotFound
	}

	daily, err := u.stats.AdvertiserDaily(ctx, advertiserID)
	if err != nil {
		return nil, fmt.Errorf("load advertiser stats: %w", err)
	}
	return summarize(daily), nil
}

// CampaignDaily returns the campaign's per-day buckets.
func (u *StatsUseCase) CampaignDaily(ctx context.Context, campaignID uuid.UUID) ([]domain.DailyStats, error) {
	if err := u.campaignExists(ctx, campaignID); err != nil {
		return nil, err
	}
	daily, err := u.stats.CampaignDaily(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load campaign stats: %w", err)
	}
	if len(daily) == 0 {
		return nil, port.ErrStatsNotFound
	}
	return daily, nil
}

// AdvertiserDaily returns the per-day buckets of every campaign the
// advertiser owns. An advertiser without campaigns yields ErrStatsNotFound.
func (u *StatsUseCase) AdvertiserDaily(ctx context.Context, advertiserID uuid.UUID) ([]domain.DailyStats, error) {
	campaigns, err := u.campaigns.ListByAdvertiser(ctx, advertiserID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, port.ErrStatsNotFound
	}
	daily, err := u.stats.AdvertiserDaily(ctx, advertiserID)
	if err != nil {
		return nil, fmt.Errorf("load advertiser stats: %w", err)
	}
	return daily, nil
}

func (u *StatsUseCase) campaignExists(ctx context.Context, campaignID uuid.UUID) error {
	c, err := u.campaigns.Get(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("load campaign: %w", err)
	}
	if c == nil {
		return port.ErrCampaignNotFound
	}
	return nil
}

func summarize(daily []domain.DailyStats) *port.StatsSummary {
	var s port.StatsSummary
	for _, d := range daily {
		s.Impressions += d.Impressions
		s.Clicks += d.Clicks
		s.SpentImpressions += d.SpentImpressions
		s.SpentClicks += d.SpentClicks
	}
	if s.Impressions > 0 {
		s.Conversion = float64(s.Clicks) / float64(s.Impressions) * 100
	}
	s.SpentTotal = s.SpentImpressions + s.SpentClicks
	return &s
}
