package auction

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// ErrInvalidInput signals that upstream validation was skipped: a negative
// day, a zero-value client or a relevance score outside the 0..100 scale.
// The ranker fails fast rather than silently defaulting.
var ErrInvalidInput = errors.New("invalid auction input")

// Ranking weights. They intentionally sum to 0.9, matching the observed
// behaviour of the system this engine replaces; do not renormalise.
const (
	weightProfit      = 0.5
	weightRelevance   = 0.25
	weightFulfillment = 0.15
)

// Bounds on raw ML scores. Values outside are a data-quality problem and are
// surfaced instead of clamped.
const (
	minRawScore = 0
	maxRawScore = 100
)

// scored carries a candidate's metrics together with its normalised values.
type scored struct {
	Metrics
	normProfit      float64
	normRelevance   float64
	normFulfillment float64
	composite       float64
}

// Rank evaluates every campaign active on day and returns them ordered best
// first. views maps campaign ID to its lifetime impression count; campaigns
// absent from the map count as zero views. Candidates whose accumulated
// penalty reaches 100% are discarded, not merely scored to zero. The sort is
// stable, so exact composite-score ties keep the input enumeration order.
func Rank(campaigns []domain.Campaign, scores []domain.MLScore, client domain.Client, day int, views map[uuid.UUID]int64) ([]domain.Campaign, error) {
	if day < 0 {
		return nil, fmt.Errorf("%w: negative day %d", ErrInvalidInput, day)
	}
	if client.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing client", ErrInvalidInput)
	}

	relevance := make(map[uuid.UUID]float64, len(scores))
	for _, s := range scores {
		if s.Score < minRawScore || s.Score > maxRawScore {
			return nil, fmt.Errorf("%w: score %d for advertiser %s outside [%d,%d]",
				ErrInvalidInput, s.Score, s.AdvertiserID, minRawScore, maxRawScore)
		}
		relevance[s.AdvertiserID] = float64(s.Score) / 100
	}

	candidates := make([]scored, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.ActiveOn(day) {
			continue
		}
		violated := TargetingViolated(client, c)
		m := ComputeMetrics(c, relevance[c.AdvertiserID], views[c.ID], violated)
		if m.Penalty >= 1.0 {
			continue
		}
		candidates = append(candidates, scored{Metrics: m})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	normalize(candidates)

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.composite > b.composite:
			return -1
		case a.composite < b.composite:
			return 1
		}
		return 0
	})

	ranked := make([]domain.Campaign, len(candidates))
	for i, s := range candidates {
		ranked[i] = s.Campaign
	}
	return ranked, nil
}

// normalize applies min-max scaling to profit and fulfillment over the
// candidate set, scales relevance by its fixed 0..100 range, and computes
// each candidate's composite score. A degenerate range (all values equal)
// maps every candidate to 0.5 instead of dividing by zero.
func normalize(candidates []scored) {
	minProfit, maxProfit := candidates[0].ExpectedProfit, candidates[0].ExpectedProfit
	minFulfill, maxFulfill := candidates[0].Fulfillment, candidates[0].Fulfillment
	for _, s := range candidates[1:] {
		minProfit = min(minProfit, s.ExpectedProfit)
		maxProfit = max(maxProfit, s.ExpectedProfit)
		minFulfill = min(minFulfill, s.Fulfillment)
		maxFulfill = max(maxFulfill, s.Fulfillment)
	}

	profitRange := maxProfit - minProfit
	fulfillRange := maxFulfill - minFulfill
	for i := range candidates {
		s := &candidates[i]

		s.normProfit = 0.5
		if profitRange > 0 {
			s.normProfit = (s.ExpectedProfit - minProfit) / profitRange
		}

		s.normRelevance = s.Relevance / 100

		s.normFulfillment = 0.5
		if fulfillRange > 0 {
			s.normFulfillment = (s.Fulfillment - minFulfill) / fulfillRange
		}

		s.composite = weightProfit*s.normProfit +
			weightRelevance*s.normRelevance +
			weightFulfillment*s.normFulfillment
	}
}
