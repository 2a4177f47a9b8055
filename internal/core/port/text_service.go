package port

import (
	"context"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

// ModerationResult is the verdict of the text service on an ad text.
type ModerationResult struct {
	Accepted bool
	Reason   string
}

// GenerationRequest describes the ad a text should be generated for.
type GenerationRequest struct {
	AdName         string
	AdvertiserName string
	Targeting      *domain.Targeting
}

// TextService moderates and generates ad texts through an external language
// model. Both calls are remote and honour context cancellation.
type TextService interface {
	Validate(ctx context.Context, adText string) (ModerationResult, error)
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
