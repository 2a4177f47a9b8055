package auction

import (
	"math"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

const (
	// Each full 5 percentage points of over-delivery adds a 5% penalty.
	overdeliveryBand    = 5.0
	overdeliveryPenalty = 0.05
	// Flat penalty for showing a campaign to a client it does not target.
	targetingPenalty = 0.10
	// Fulfillment beyond twice the impression target is treated as exactly 2x.
	fulfillmentCap = 2.0
)

// Metrics are the per-candidate figures the ranker normalises and weighs.
// Penalty is the raw accumulated value before the 100% clamp; candidates
// with Penalty >= 1 are dropped from ranking entirely.
type Metrics struct {
	Campaign       domain.Campaign
	ExpectedProfit float64
	Relevance      float64 // 0..100 scale
	Fulfillment    float64 // 0..2 scale
	Penalty        float64
}

// ComputeMetrics derives the ranking metrics for one candidate. relevance is
// the client-advertiser multiplier in [0,1], totalViews the campaign's
// lifetime impression count across all days.
func ComputeMetrics(c domain.Campaign, relevance float64, totalViews int64, violated bool) Metrics {
	penalty := 0.0

	if c.ImpressionsLimit > 0 {
		excess := totalViews - int64(c.ImpressionsLimit)
		if excess < 0 {
			excess = 0
		}
		excessPct := float64(excess) / float64(c.ImpressionsLimit) * 100
		penalty += math.Floor(excessPct/overdeliveryBand) * overdeliveryPenalty
	}

	if violated {
		penalty += targetingPenalty
	}

	baseProfit := c.CostPerImpression + relevance*c.CostPerClick
	adjustedProfit := baseProfit * (1 - math.Min(penalty, 1.0))

	fulfillment := 1.0
	if c.ImpressionsLimit > 0 {
		fulfillment = float64(totalViews) / float64(c.ImpressionsLimit)
	}
	fulfillment = math.Min(fulfillment, fulfillmentCap)

	return Metrics{
		Campaign:       c,
		ExpectedProfit: adjustedProfit,
		Relevance:      relevance * 100,
		Fulfillment:    fulfillment,
		Penalty:        penalty,
	}
}
