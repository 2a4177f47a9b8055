package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/auction"
	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// AdUseCase implements port.AdUseCase: it resolves the current simulated
// day, gathers auction inputs and runs the selection engine. The auction
// itself is pure; the only writes are the AdView registration and the stats
// ledger, both delegated to the repository.
type AdUseCase struct {
	repo  port.AdRepository
	cache port.ScoreCache
	clock port.Clock
}

// NewAdUseCase creates the delivery usecase with its outbound ports.
func NewAdUseCase(repo port.AdRepository, cache port.ScoreCache, clock port.Clock) *AdUseCase {
	return &AdUseCase{repo: repo, cache: cache, clock: clock}
}

// ServeAd picks the best-fit campaign for the client on the current day.
// Selection re-runs on every request; the AdView registration decides
// whether this request also counts an impression, so repeat views within a
// day return a fresh auction result without touching the ledger again.
func (u *AdUseCase) ServeAd(ctx context.Context, clientID uuid.UUID) (*port.AdResponse, error) {
	day, err := u.clock.CurrentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("current day: %w", err)
	}

	client, err := u.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if client == nil {
		return nil, port.ErrClientNotFound
	}

	scores, err := u.scores(ctx, clientID)
	if err != nil {
		return nil, err
	}

	campaigns, err := u.repo.ActiveCampaigns(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("load active campaigns: %w", err)
	}

	ids := make([]uuid.UUID, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}
	views, err := u.repo.LifetimeImpressions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load lifetime impressions: %w", err)
	}

	ranked, err := auction.Rank(campaigns, scores, *client, day, views)
	if err != nil {
		return nil, err
	}
	best, ok := auction.SelectBest(ranked)
	if !ok {
		return nil, port.ErrNoInventory
	}

	created, err := u.repo.RegisterView(ctx, domain.AdView{
		ID:         uuid.New(),
		CampaignID: best.ID,
		ClientID:   clientID,
		ViewDate:   day,
	})
	if err != nil {
		return nil, fmt.Errorf("register view: %w", err)
	}
	if created {
		ev := domain.StatEvent{
			CampaignID:        best.ID,
			Day:               day,
			Kind:              domain.EventImpression,
			CostPerImpression: best.CostPerImpression,
			CostPerClick:      best.CostPerClick,
		}
		if err = u.repo.RecordEvent(ctx, ev); err != nil {
			return nil, fmt.Errorf("record impression: %w", err)
		}
	}

	return &port.AdResponse{
		AdID:         best.ID,
		AdTitle:      best.AdTitle,
		AdText:       best.AdText,
		AdvertiserID: best.AdvertiserID,
	}, nil
}

// RegisterClick folds a click into the campaign's bucket for the current
// day. The client is not required to have seen the ad first.
func (u *AdUseCase) RegisterClick(ctx context.Context, campaignID, _ uuid.UUID) error {
	day, err := u.clock.CurrentDay(ctx)
	if err != nil {
		return fmt.Errorf("current day: %w", err)
	}

	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("load campaign: %w", err)
	}
	if c == nil {
		return port.ErrCampaignNotFound
	}

	return u.repo.RecordEvent(ctx, domain.StatEvent{
		CampaignID:        c.ID,
		Day:               day,
		Kind:              domain.EventClick,
		CostPerImpression: c.CostPerImpression,
		CostPerClick:      c.CostPerClick,
	})
}

// scores reads the client's relevance scores from the cache, falling back to
// the system of record and backfilling the cache on a miss.
func (u *AdUseCase) scores(ctx context.Context, clientID uuid.UUID) ([]domain.MLScore, error) {
	scores, err := u.cache.Scores(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("score cache: %w", err)
	}
	if len(scores) > 0 {
		return scores, nil
	}

	scores, err = u.repo.ScoresForClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	for _, s := range scores {
		if err = u.cache.Put(ctx, s); err != nil {
			return nil, fmt.Errorf("backfill score cache: %w", err)
		}
	}
	return scores, nil
}
