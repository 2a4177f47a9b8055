package domain

import "github.com/google/uuid"

// Campaign is an advertising campaign. Dates are simulated day numbers, not
// wall-clock time; a campaign is eligible when
// StartDate <= currentDay <= EndDate. An ImpressionsLimit of 0 means
// unlimited delivery.
type Campaign struct {
	ID                uuid.UUID
	AdvertiserID      uuid.UUID
	ImpressionsLimit  int
	ClicksLimit       int
	CostPerImpression float64
	CostPerClick      float64
	AdTitle           string
	AdText            string
	StartDate         int
	EndDate           int
	Targeting         *Targeting
}

// ActiveOn reports whether the campaign's flight covers the given day.
func (c Campaign) ActiveOn(day int) bool {
	return c.StartDate <= day && day <= c.EndDate
}
