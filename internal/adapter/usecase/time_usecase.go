package usecase

import (
	"context"

	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// TimeUseCase implements port.TimeUseCase over the clock store.
type TimeUseCase struct {
	clock port.Clock
}

// NewTimeUseCase creates the clock usecase.
func NewTimeUseCase(clock port.Clock) *TimeUseCase {
	return &TimeUseCase{clock: clock}
}

// Advance moves the simulated day forward. The underlying store rejects
// moves into the past with port.ErrDateInPast.
func (u *TimeUseCase) Advance(ctx context.Context, day int) (int, error) {
	return u.clock.Advance(ctx, day)
}
