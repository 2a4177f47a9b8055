package auction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

func TestComputeMetricsWithinLimit(t *testing.T) {
	c := domain.Campaign{
		ImpressionsLimit:  1000,
		CostPerImpression: 0.5,
		CostPerClick:      1.0,
	}

	m := ComputeMetrics(c, 0.5, 0, false)

	require.Equal(t, 0.0, m.Penalty)
	require.InDelta(t, 1.0, m.ExpectedProfit, 1e-9) // 0.5 + 0.5*1.0
	require.InDelta(t, 50.0, m.Relevance, 1e-9)
	require.Equal(t, 0.0, m.Fulfillment)
}

func TestComputeMetricsOverdelivery(t *testing.T) {
	c := domain.Campaign{
		ImpressionsLimit:  1000,
		CostPerImpression: 0.5,
		CostPerClick:      1.0,
	}

	// 10% over the limit -> two full 5% bands -> 0.10 penalty.
	m := ComputeMetrics(c, 0.5, 1100, false)

	require.InDelta(t, 0.10, m.Penalty, 1e-9)
	require.InDelta(t, 0.90, m.ExpectedProfit, 1e-9)
	require.InDelta(t, 1.1, m.Fulfillment, 1e-9)
}

func TestComputeMetricsPenaltyClampsAtFullProfit(t *testing.T) {
	c := domain.Campaign{
		ImpressionsLimit:  100,
		CostPerImpression: 1.0,
		CostPerClick:      1.0,
	}

	// 500% over: raw penalty 5.0, clamped to 1.0 when adjusting profit.
	m := ComputeMetrics(c, 1.0, 600, false)

	require.InDelta(t, 5.0, m.Penalty, 1e-9)
	require.Equal(t, 0.0, m.ExpectedProfit)
	require.Equal(t, 2.0, m.Fulfillment) // capped at 2x
}

func TestComputeMetricsTargetingPenalty(t *testing.T) {
	c := domain.Campaign{CostPerImpression: 1.0}

	m := ComputeMetrics(c, 0, 0, true)

	require.InDelta(t, 0.10, m.Penalty, 1e-9)
	require.InDelta(t, 0.90, m.ExpectedProfit, 1e-9)
}

func TestComputeMetricsUnlimitedCampaign(t *testing.T) {
	c := domain.Campaign{ImpressionsLimit: 0, CostPerImpression: 1.0}

	for _, views := range []int64{0, 1, 1_000_000} {
		m := ComputeMetrics(c, 0, views, false)
		require.Equal(t, 1.0, m.Fulfillment, "views=%d", views)
		require.Equal(t, 0.0, m.Penalty, "views=%d", views)
	}
}

func TestComputeMetricsPenaltiesAccumulate(t *testing.T) {
	c := domain.Campaign{
		ImpressionsLimit:  100,
		CostPerImpression: 1.0,
	}

	// 10% over (0.10) plus targeting violation (0.10).
	m := ComputeMetrics(c, 0, 110, true)

	require.InDelta(t, 0.20, m.Penalty, 1e-9)
	require.InDelta(t, 0.80, m.ExpectedProfit, 1e-9)
}
