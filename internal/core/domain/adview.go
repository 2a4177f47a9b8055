package domain

import "github.com/google/uuid"

// AdView marks that a client has already been served an ad on a given day.
// At most one row exists per (client, day); the storage layer enforces this
// with a unique constraint so concurrent first impressions cannot both
// register.
type AdView struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	ClientID   uuid.UUID
	ViewDate   int
}
