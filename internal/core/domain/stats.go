package domain

import "github.com/google/uuid"

// EventKind distinguishes the two billable ad events.
type EventKind string

const (
	EventImpression EventKind = "IMPRESSION"
	EventClick      EventKind = "CLICK"
)

// StatEvent is a single impression or click to be folded into a campaign's
// daily bucket. Exactly one bucket mutation per event; events are never
// merged or batched.
type StatEvent struct {
	CampaignID        uuid.UUID
	Day               int
	Kind              EventKind
	CostPerImpression float64
	CostPerClick      float64
}

// DailyStats accumulates events for one (campaign, day) pair. Rows are
// created lazily on the first event and never deleted.
type DailyStats struct {
	CampaignID       uuid.UUID
	Day              int
	Impressions      int64
	Clicks           int64
	SpentImpressions float64
	SpentClicks      float64
}
