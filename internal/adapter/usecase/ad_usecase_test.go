package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port/mocks"
)

func deliveryFixture(t *testing.T) (*mocks.MockAdRepository, *mocks.MockScoreCache, *mocks.MockClock, *AdUseCase) {
	repo := mocks.NewMockAdRepository(t)
	cache := mocks.NewMockScoreCache(t)
	clock := mocks.NewMockClock(t)
	return repo, cache, clock, NewAdUseCase(repo, cache, clock)
}

// TestServeAdSelection ensures the usecase picks the most profitable
// campaign among the eligible ones.
func TestServeAdSelection(t *testing.T) {
	repo, cache, clock, svc := deliveryFixture(t)

	client := domain.Client{ID: uuid.New(), Login: "u1", Age: 30, Location: "Moscow", Gender: domain.GenderMale}
	advA, advB := uuid.New(), uuid.New()
	cheap := domain.Campaign{ID: uuid.New(), AdvertiserID: advA, CostPerImpression: 0.5, ImpressionsLimit: 100, EndDate: 10, AdTitle: "cheap"}
	rich := domain.Campaign{ID: uuid.New(), AdvertiserID: advB, CostPerImpression: 5, ImpressionsLimit: 100, EndDate: 10, AdTitle: "rich"}

	clock.EXPECT().CurrentDay(mock.Anything).Return(3, nil)
	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	// кэш отдаёт скоры сразу, без похода в Postgres
	cache.EXPECT().Scores(mock.Anything, client.ID).Return([]domain.MLScore{
		{ClientID: client.ID, AdvertiserID: advA, Score: 50},
		{ClientID: client.ID, AdvertiserID: advB, Score: 50},
	}, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, 3).Return([]domain.Campaign{cheap, rich}, nil)
	repo.EXPECT().LifetimeImpressions(mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{}, nil)
	repo.EXPECT().RegisterView(mock.Anything, mock.AnythingOfType("domain.AdView")).Return(true, nil)
	repo.EXPECT().
		RecordEvent(mock.Anything, mock.MatchedBy(func(ev domain.StatEvent) bool {
			return ev.CampaignID == rich.ID && ev.Kind == domain.EventImpression && ev.Day == 3
		})).
		Return(nil)

	resp, err := svc.ServeAd(context.Background(), client.ID)
	require.NoError(t, err)
	require.Equal(t, rich.ID, resp.AdID)
	require.Equal(t, advB, resp.AdvertiserID)
}

// TestServeAdRepeatView ensures a second request on the same day still
// returns an ad but does not count another impression.
func TestServeAdRepeatView(t *testing.T) {
	repo, cache, clock, svc := deliveryFixture(t)

	client := domain.Client{ID: uuid.New(), Gender: domain.GenderFemale}
	c := domain.Campaign{ID: uuid.New(), AdvertiserID: uuid.New(), CostPerImpression: 1, EndDate: 5}

	clock.EXPECT().CurrentDay(mock.Anything).Return(0, nil)
	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	cache.EXPECT().Scores(mock.Anything, client.ID).Return([]domain.MLScore{
		{ClientID: client.ID, AdvertiserID: c.AdvertiserID, Score: 80},
	}, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, 0).Return([]domain.Campaign{c}, nil)
	repo.EXPECT().LifetimeImpressions(mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{}, nil)
	// просмотр за этот день уже есть, RecordEvent вызываться не должен
	repo.EXPECT().RegisterView(mock.Anything, mock.AnythingOfType("domain.AdView")).Return(false, nil)

	resp, err := svc.ServeAd(context.Background(), client.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, resp.AdID)
}

// TestServeAdScoreCacheBackfill ensures a cache miss falls back to the
// system of record and writes the scores back to the cache.
func TestServeAdScoreCacheBackfill(t *testing.T) {
	repo, cache, clock, svc := deliveryFixture(t)

	client := domain.Client{ID: uuid.New(), Gender: domain.GenderMale}
	c := domain.Campaign{ID: uuid.New(), AdvertiserID: uuid.New(), CostPerImpression: 1, EndDate: 5}
	score := domain.MLScore{ClientID: client.ID, AdvertiserID: c.AdvertiserID, Score: 42}

	clock.EXPECT().CurrentDay(mock.Anything).Return(1, nil)
	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	cache.EXPECT().Scores(mock.Anything, client.ID).Return(nil, nil)
	repo.EXPECT().ScoresForClient(mock.Anything, client.ID).Return([]domain.MLScore{score}, nil)
	cache.EXPECT().Put(mock.Anything, score).Return(nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, 1).Return([]domain.Campaign{c}, nil)
	repo.EXPECT().LifetimeImpressions(mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{}, nil)
	repo.EXPECT().RegisterView(mock.Anything, mock.AnythingOfType("domain.AdView")).Return(true, nil)
	repo.EXPECT().RecordEvent(mock.Anything, mock.AnythingOfType("domain.StatEvent")).Return(nil)

	_, err := svc.ServeAd(context.Background(), client.ID)
	require.NoError(t, err)
}

// TestServeAdNoInventory ensures an empty candidate set maps to the
// distinguished no-inventory error.
func TestServeAdNoInventory(t *testing.T) {
	repo, cache, clock, svc := deliveryFixture(t)

	client := domain.Client{ID: uuid.New(), Gender: domain.GenderMale}

	clock.EXPECT().CurrentDay(mock.Anything).Return(7, nil)
	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	cache.EXPECT().Scores(mock.Anything, client.ID).Return([]domain.MLScore{}, nil)
	repo.EXPECT().ScoresForClient(mock.Anything, client.ID).Return(nil, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, 7).Return(nil, nil)
	repo.EXPECT().LifetimeImpressions(mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{}, nil)

	_, err := svc.ServeAd(context.Background(), client.ID)
	require.ErrorIs(t, err, port.ErrNoInventory)
}

// TestServeAdUnknownClient ensures an unknown client id is a distinguished
// error, not an empty auction.
func TestServeAdUnknownClient(t *testing.T) {
	repo, _, clock, svc := deliveryFixture(t)

	id := uuid.New()
	clock.EXPECT().CurrentDay(mock.Anything).Return(0, nil)
	repo.EXPECT().GetClient(mock.Anything, id).Return(nil, nil)

	_, err := svc.ServeAd(context.Background(), id)
	require.ErrorIs(t, err, port.ErrClientNotFound)
}

// TestConcurrentFirstView ensures that when many goroutines request an ad for
// the same client on the same day, exactly one impression reaches the ledger.
func TestConcurrentFirstView(t *testing.T) {
	repo, cache, clock, svc := deliveryFixture(t)

	client := domain.Client{ID: uuid.New(), Gender: domain.GenderMale}
	c := domain.Campaign{ID: uuid.New(), AdvertiserID: uuid.New(), CostPerImpression: 1, EndDate: 5}

	clock.EXPECT().CurrentDay(mock.Anything).Return(2, nil)
	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	cache.EXPECT().Scores(mock.Anything, client.ID).Return([]domain.MLScore{
		{ClientID: client.ID, AdvertiserID: c.AdvertiserID, Score: 60},
	}, nil)
	repo.EXPECT().ActiveCampaigns(mock.Anything, 2).Return([]domain.Campaign{c}, nil)
	repo.EXPECT().LifetimeImpressions(mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{}, nil)

	// эмулируем уникальный индекс (client_id, view_date): выигрывает первый
	var (
		mu       sync.Mutex
		seen     bool
		recorded int
	)
	repo.EXPECT().
		RegisterView(mock.Anything, mock.AnythingOfType("domain.AdView")).
		RunAndReturn(func(ctx context.Context, view domain.AdView) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if seen {
				return false, nil
			}
			seen = true
			return true, nil
		})
	repo.EXPECT().
		RecordEvent(mock.Anything, mock.AnythingOfType("domain.StatEvent")).
		RunAndReturn(func(ctx context.Context, ev domain.StatEvent) error {
			mu.Lock()
			defer mu.Unlock()
			recorded++
			return nil
		})

	wg := sync.WaitGroup{}
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			resp, err := svc.ServeAd(context.Background(), client.ID)
			if err != nil || resp == nil {
				t.Errorf("ServeAd error: %v", err)
			}
		}()
	}
	wg.Wait()

	if recorded != 1 {
		t.Fatalf("unexpected impression count: got %d, want 1", recorded)
	}
}

// TestRegisterClick ensures a click on an existing campaign reaches the
// ledger with the campaign's current price.
func TestRegisterClick(t *testing.T) {
	repo, _, clock, svc := deliveryFixture(t)

	c := domain.Campaign{ID: uuid.New(), AdvertiserID: uuid.New(), CostPerClick: 2.5, EndDate: 5}

	clock.EXPECT().CurrentDay(mock.Anything).Return(4, nil)
	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(&c, nil)
	repo.EXPECT().
		RecordEvent(mock.Anything, mock.MatchedBy(func(ev domain.StatEvent) bool {
			return ev.CampaignID == c.ID && ev.Kind == domain.EventClick && ev.Day == 4 && ev.CostPerClick == 2.5
		})).
		Return(nil)

	err := svc.RegisterClick(context.Background(), c.ID, uuid.New())
	require.NoError(t, err)
}

// TestRegisterClickUnknownCampaign maps a missing campaign to the
// distinguished not-found error.
func TestRegisterClickUnknownCampaign(t *testing.T) {
	repo, _, clock, svc := deliveryFixture(t)

	id := uuid.New()
	clock.EXPECT().CurrentDay(mock.Anything).Return(0, nil)
	repo.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	err := svc.RegisterClick(context.Background(), id, uuid.New())
	require.ErrorIs(t, err, port.ErrCampaignNotFound)
}

// TestServeAdClockFailure propagates clock errors instead of serving with a
// stale day.
func TestServeAdClockFailure(t *testing.T) {
	_, _, clock, svc := deliveryFixture(t)

	boom := errors.New("redis down")
	clock.EXPECT().CurrentDay(mock.Anything).Return(0, boom)

	_, err := svc.ServeAd(context.Background(), uuid.New())
	require.ErrorIs(t, err, boom)
}
