package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// DirectoryUseCase implements port.DirectoryUseCase: client and advertiser
// upserts plus ML score maintenance with write-through caching.
type DirectoryUseCase struct {
	clients     port.ClientRepository
	advertisers port.AdvertiserRepository
	scores      port.ScoreRepository
	cache       port.ScoreCache
}

// NewDirectoryUseCase creates the directory usecase.
func NewDirectoryUseCase(
	clients port.ClientRepository,
	advertisers port.AdvertiserRepository,
	scores port.ScoreRepository,
	cache port.ScoreCache,
) *DirectoryUseCase {
	return &DirectoryUseCase{clients: clients, advertisers: advertisers, scores: scores, cache: cache}
}

// GetClient returns a client profile.
func (u *DirectoryUseCase) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	c, err := u.clients.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if c == nil {
		return nil, port.ErrClientNotFound
	}
	return c, nil
}

// UpsertClients creates or replaces the given clients.
func (u *DirectoryUseCase) UpsertClients(ctx context.Context, clients []domain.Client) error {
	return u.clients.Upsert(ctx, clients)
}

// GetAdvertiser returns an advertiser.
func (u *DirectoryUseCase) GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	a, err := u.advertisers.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load advertiser: %w", err)
	}
	if a == nil {
		return nil, port.ErrAdvertiserNotFound
	}
	return a, nil
}

// UpsertAdvertisers creates or replaces the given advertisers.
func (u *DirectoryUseCase) UpsertAdvertisers(ctx context.Context, advertisers []domain.Advertiser) error {
	return u.advertisers.Upsert(ctx, advertisers)
}

// UpsertScore stores an ML score and writes it through to the cache so the
// delivery path sees it immediately.
func (u *DirectoryUseCase) UpsertScore(ctx context.Context, score domain.MLScore) error {
	client, err := u.clients.Get(ctx, score.ClientID)
	if err != nil {
		return fmt.Errorf("load client: %w", err)
	}
	if client == nil {
		return port.ErrClientNotFound
	}
	adv, err := u.advertisers.Get(ctx, score.AdvertiserID)
	if err != nil {
		return fmt.Errorf("load advertiser: %w", err)
	}
	if adv == nil {
		return port.ErrAdvertiserNotFound
	}

	if err = u.scores.Upsert(ctx, score); err != nil {
		return fmt.Errorf("store score: %w", err)
	}
	if err = u.cache.Put(ctx, score); err != nil {
		return fmt.Errorf("cache score: %w", err)
	}
	return nil
}
