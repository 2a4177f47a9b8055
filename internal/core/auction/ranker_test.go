package auction

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

func testClient() domain.Client {
	return domain.Client{
		ID:       uuid.New(),
		Age:      30,
		Location: "Moscow",
		Gender:   domain.GenderMale,
	}
}

func TestRankInvalidInput(t *testing.T) {
	client := testClient()

	_, err := Rank(nil, nil, client, -1, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Rank(nil, nil, domain.Client{}, 0, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	bad := []domain.MLScore{{ClientID: client.ID, AdvertiserID: uuid.New(), Score: 101}}
	_, err = Rank(nil, bad, client, 0, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	bad[0].Score = -1
	_, err = Rank(nil, bad, client, 0, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRankFiltersInactiveCampaigns(t *testing.T) {
	client := testClient()
	past := domain.Campaign{ID: uuid.New(), StartDate: 0, EndDate: 4}
	future := domain.Campaign{ID: uuid.New(), StartDate: 6, EndDate: 9}
	active := domain.Campaign{ID: uuid.New(), StartDate: 5, EndDate: 5}

	ranked, err := Rank([]domain.Campaign{past, future, active}, nil, client, 5, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	require.Equal(t, active.ID, ranked[0].ID)
}

func TestRankExcludesFullyPenalizedCandidates(t *testing.T) {
	client := testClient()
	// 500% over the limit: raw penalty 5.0, dropped regardless of targeting.
	drowned := domain.Campaign{
		ID:               uuid.New(),
		ImpressionsLimit: 100,
		EndDate:          10,
	}
	healthy := domain.Campaign{ID: uuid.New(), EndDate: 10, CostPerImpression: 0.1}

	views := map[uuid.UUID]int64{drowned.ID: 600}
	ranked, err := Rank([]domain.Campaign{drowned, healthy}, nil, client, 0, views)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	require.Equal(t, healthy.ID, ranked[0].ID)

	// Only the fully penalized candidate -> no inventory at all.
	ranked, err = Rank([]domain.Campaign{drowned}, nil, client, 0, views)
	require.NoError(t, err)
	require.Empty(t, ranked)
}

func TestRankHigherProfitWins(t *testing.T) {
	client := testClient()
	low := domain.Campaign{ID: uuid.New(), EndDate: 10, CostPerImpression: 10}
	high := domain.Campaign{ID: uuid.New(), EndDate: 10, CostPerImpression: 20}

	ranked, err := Rank([]domain.Campaign{low, high}, nil, client, 0, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	require.Equal(t, high.ID, ranked[0].ID)
	require.Equal(t, low.ID, ranked[1].ID)
}

func TestRankRelevanceBreaksEqualProfit(t *testing.T) {
	client := testClient()
	advLiked := uuid.New()
	advUnknown := uuid.New()
	// Identical costs; the liked advertiser's relevance decides.
	plain := domain.Campaign{ID: uuid.New(), AdvertiserID: advUnknown, EndDate: 10, CostPerImpression: 1}
	liked := domain.Campaign{ID: uuid.New(), AdvertiserID: advLiked, EndDate: 10, CostPerImpression: 1}

	scores := []domain.MLScore{{ClientID: client.ID, AdvertiserID: advLiked, Score: 80}}
	ranked, err := Rank([]domain.Campaign{plain, liked}, scores, client, 0, nil)
	require.NoError(t, err)
	require.Equal(t, liked.ID, ranked[0].ID)
}

func TestRankExactTiesKeepInputOrder(t *testing.T) {
	client := testClient()
	first := domain.Campaign{ID: uuid.New(), EndDate: 10, CostPerImpression: 1}
	second := domain.Campaign{ID: uuid.New(), EndDate: 10, CostPerImpression: 1}

	ranked, err := Rank([]domain.Campaign{first, second}, nil, client, 0, nil)
	require.NoError(t, err)
	require.Equal(t, first.ID, ranked[0].ID)
	require.Equal(t, second.ID, ranked[1].ID)
}

func TestRankEmptyPoolIsNotAnError(t *testing.T) {
	ranked, err := Rank(nil, nil, testClient(), 0, nil)
	require.NoError(t, err)
	require.Empty(t, ranked)
}

func TestNormalizeDegenerateRanges(t *testing.T) {
	// All profits and fulfillments equal: both normalise to 0.5 for everyone.
	candidates := []scored{
		{Metrics: Metrics{ExpectedProfit: 3, Relevance: 40, Fulfillment: 1}},
		{Metrics: Metrics{ExpectedProfit: 3, Relevance: 80, Fulfillment: 1}},
	}
	normalize(candidates)

	for _, s := range candidates {
		require.Equal(t, 0.5, s.normProfit)
		require.Equal(t, 0.5, s.normFulfillment)
	}
	require.InDelta(t, 0.4, candidates[0].normRelevance, 1e-9)
	require.InDelta(t, 0.8, candidates[1].normRelevance, 1e-9)
}

func TestNormalizeCompositeIsMonotone(t *testing.T) {
	base := []scored{
		{Metrics: Metrics{ExpectedProfit: 1, Relevance: 50, Fulfillment: 0.5}},
		{Metrics: Metrics{ExpectedProfit: 2, Relevance: 50, Fulfillment: 0.5}},
		{Metrics: Metrics{ExpectedProfit: 3, Relevance: 50, Fulfillment: 0.5}},
	}
	normalize(base)
	require.Less(t, base[0].composite, base[1].composite)
	require.Less(t, base[1].composite, base[2].composite)

	// Improving only relevance must not rank a candidate worse.
	better := []scored{
		{Metrics: Metrics{ExpectedProfit: 1, Relevance: 10, Fulfillment: 0.5}},
		{Metrics: Metrics{ExpectedProfit: 1, Relevance: 90, Fulfillment: 0.5}},
	}
	normalize(better)
	require.Greater(t, better[1].composite, better[0].composite)
}

func TestSelectBest(t *testing.T) {
	_, ok := SelectBest(nil)
	require.False(t, ok)

	winner := domain.Campaign{ID: uuid.New()}
	got, ok := SelectBest([]domain.Campaign{winner, {ID: uuid.New()}})
	require.True(t, ok)
	require.Equal(t, winner.ID, got.ID)
}
