package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase. Ad texts pass through the
// text service on create and on every text change.
type CampaignUseCase struct {
	campaigns   port.CampaignRepository
	advertisers port.AdvertiserRepository
	text        port.TextService
	clock       port.Clock
}

// NewCampaignUseCase creates the campaign management usecase.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	advertisers port.AdvertiserRepository,
	text port.TextService,
	clock port.Clock,
) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, advertisers: advertisers, text: text, clock: clock}
}

// Create stores a new campaign for an existing advertiser. The ad text is
// either generated from the draft's title, advertiser and targeting, or
// moderated; a rejected text fails with ErrModerationRejected.
func (u *CampaignUseCase) Create(ctx context.Context, draft port.CampaignDraft) (*domain.Campaign, error) {
	adv, err := u.advertisers.Get(ctx, draft.AdvertiserID)
	if err != nil {
		return nil, fmt.Errorf("load advertiser: %w", err)
	}
	if adv == nil {
		return nil, port.ErrAdvertiserNotFound
	}

	text := draft.AdText
	if draft.GenerateText {
		text, err = u.text.Generate(ctx, port.GenerationRequest{
			AdName:         draft.AdTitle,
			AdvertiserName: adv.Name,
			Targeting:      draft.Targeting,
		})
		if err != nil {
			return nil, fmt.Errorf("generate ad text: %w", err)
		}
	} else if err = u.moderate(ctx, text); err != nil {
		return nil, err
	}

	return u.campaigns.Create(ctx, domain.Campaign{
		AdvertiserID:      draft.AdvertiserID,
		ImpressionsLimit:  draft.ImpressionsLimit,
		ClicksLimit:       draft.ClicksLimit,
		CostPerImpression: draft.CostPerImpression,
		CostPerClick:      draft.CostPerClick,
		AdTitle:           draft.AdTitle,
		AdText:            text,
		StartDate:         draft.StartDate,
		EndDate:           draft.EndDate,
		Targeting:         draft.Targeting,
	})
}

// List returns one page of the advertiser's campaigns. A nil size returns
// everything; pages are 1-based.
func (u *CampaignUseCase) List(ctx context.Context, advertiserID uuid.UUID, size, page *int) ([]domain.Campaign, error) {
	limit, offset := 0, 0
	if size != nil && *size > 0 {
		limit = *size
		if page != nil && *page > 1 {
			offset = (*page - 1) * limit
		}
	}
	return u.campaigns.ListByAdvertiser(ctx, advertiserID, limit, offset)
}

// Get returns the campaign when it exists and belongs to the advertiser.
func (u *CampaignUseCase) Get(ctx context.Context, advertiserID, campaignID uuid.UUID) (*domain.Campaign, error) {
	return u.owned(ctx, advertiserID, campaignID)
}

// Update applies the mutable fields. Limits and flight dates are frozen
// while the campaign's flight is running; costs, title, text and targeting
// stay mutable. A changed text is re-moderated.
func (u *CampaignUseCase) Update(ctx context.Context, advertiserID, campaignID uuid.UUID, upd port.CampaignUpdate) (*domain.Campaign, error) {
	c, err := u.owned(ctx, advertiserID, campaignID)
	if err != nil {
		return nil, err
	}

	today, err := u.clock.CurrentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("current day: %w", err)
	}
	started := c.ActiveOn(today)

	c.Targeting = upd.Targeting

	if !started {
		if upd.ImpressionsLimit != nil {
			c.ImpressionsLimit = *upd.ImpressionsLimit
		}
		if upd.ClicksLimit != nil {
			c.ClicksLimit = *upd.ClicksLimit
		}
		if upd.StartDate != nil {
			c.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			c.EndDate = *upd.EndDate
		}
	}

	if upd.CostPerImpression != nil {
		c.CostPerImpression = *upd.CostPerImpression
	}
	if upd.CostPerClick != nil {
		c.CostPerClick = *upd.CostPerClick
	}
	if upd.AdTitle != nil {
		c.AdTitle = *upd.AdTitle
	}
	if upd.AdText != nil {
		if err = u.moderate(ctx, *upd.AdText); err != nil {
			return nil, err
		}
		c.AdText = *upd.AdText
	}

	if err = u.campaigns.Update(ctx, *c); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return c, nil
}

// Delete removes the advertiser's campaign.
func (u *CampaignUseCase) Delete(ctx context.Context, advertiserID, campaignID uuid.UUID) error {
	if _, err := u.owned(ctx, advertiserID, campaignID); err != nil {
		return err
	}
	return u.campaigns.Delete(ctx, campaignID)
}

func (u *CampaignUseCase) owned(ctx context.Context, advertiserID, campaignID uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load campaign: %w", err)
	}
	if c == nil || c.AdvertiserID != advertiserID {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

func (u *CampaignUseCase) moderate(ctx context.Context, text string) error {
	res, err := u.text.Validate(ctx, text)
	if err != nil {
		return fmt.Errorf("validate ad text: %w", err)
	}
	if !res.Accepted {
		return fmt.Errorf("%w: %s", port.ErrModerationRejected, res.Reason)
	}
	return nil
}
