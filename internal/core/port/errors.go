package port

import "errors"

// Sentinel errors shared across adapters. HTTP handlers map them to response
// statuses with errors.Is.
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrAdvertiserNotFound = errors.New("advertiser not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrStatsNotFound      = errors.New("campaign stats not found")

	// ErrNoInventory is the distinguished "nothing to show" outcome of an
	// auction: no campaign is active for the day or every candidate was
	// fully penalized. Not an internal failure.
	ErrNoInventory = errors.New("no ads available")

	// ErrDateInPast is returned when advancing the simulated clock to an
	// earlier day; the current day is monotonically non-decreasing.
	ErrDateInPast = errors.New("cannot set date to past")

	// ErrModerationRejected is returned when the text service refuses an ad
	// text. The wrapping error carries the rejection reason.
	ErrModerationRejected = errors.New("ad text rejected")
)
