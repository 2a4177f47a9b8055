package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// campaignColumns is the select list shared by every campaign query; keep it
// in sync with collectCampaign.
const campaignColumns = `campaign_id, advertiser_id, impressions_limit, clicks_limit,
       cost_per_impression, cost_per_click, ad_title, ad_text, start_date, end_date, targeting`

// collectCampaign scans one campaign row, decoding the JSONB targeting rule.
func collectCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c   domain.Campaign
		raw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.ImpressionsLimit,
		&c.ClicksLimit,
		&c.CostPerImpression,
		&c.CostPerClick,
		&c.AdTitle,
		&c.AdText,
		&c.StartDate,
		&c.EndDate,
		&raw,
	)
	if err != nil {
		return c, err
	}
	if len(raw) > 0 {
		var t domain.Targeting
		if err = json.Unmarshal(raw, &t); err != nil {
			return c, fmt.Errorf("decode targeting: %w", err)
		}
		c.Targeting = &t
	}
	return c, nil
}

// encodeTargeting marshals a targeting rule for the JSONB column; nil stays
// NULL so "no rule" and "empty rule" remain distinguishable.
func encodeTargeting(t *domain.Targeting) ([]byte, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}
