package domain

import "github.com/google/uuid"

// Advertiser owns campaigns.
type Advertiser struct {
	ID   uuid.UUID
	Name string
}

// MLScore is the machine-learning affinity between a client and an
// advertiser. The raw score is an integer on a 0..100 scale; the auction
// divides by 100 to obtain a relevance multiplier in [0,1].
type MLScore struct {
	ClientID     uuid.UUID
	AdvertiserID uuid.UUID
	Score        int
}
