package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// ScoreCache is a fast lookaside store for ML scores. The delivery path
// reads it first and falls back to the system of record, backfilling on a
// miss. Reconciliation beyond write-through is not the cache's concern.
type ScoreCache interface {
	// Scores returns every cached score for the client; empty on a miss.
	Scores(ctx context.Context, clientID uuid.UUID) ([]domain.MLScore, error)
	// Put stores one score.
	Put(ctx context.Context, score domain.MLScore) error
}

// Clock provides the simulated current day. The day is a non-negative
// integer and must never move backward.
type Clock interface {
	CurrentDay(ctx context.Context) (int, error)
	// Advance sets the current day and returns it. Moving backward fails
	// with ErrDateInPast; the check-and-set is atomic under concurrent
	// advances.
	Advance(ctx context.Context, day int) (int, error)
}
