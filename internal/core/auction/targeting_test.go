package auction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

func TestTargetingViolated(t *testing.T) {
	client := domain.Client{
		Age:      30,
		Location: "Moscow",
		Gender:   domain.GenderMale,
	}

	tests := []struct {
		name      string
		targeting *domain.Targeting
		violated  bool
	}{
		{name: "no rule", targeting: nil, violated: false},
		{name: "empty rule", targeting: &domain.Targeting{}, violated: false},
		{name: "gender wildcard", targeting: &domain.Targeting{Gender: ptr(domain.GenderAll)}, violated: false},
		{name: "gender match", targeting: &domain.Targeting{Gender: ptr(domain.GenderMale)}, violated: false},
		{name: "gender mismatch", targeting: &domain.Targeting{Gender: ptr(domain.GenderFemale)}, violated: true},
		{name: "age in range", targeting: &domain.Targeting{AgeFrom: ptr(18), AgeTo: ptr(35)}, violated: false},
		{name: "age range inclusive", targeting: &domain.Targeting{AgeFrom: ptr(30), AgeTo: ptr(30)}, violated: false},
		{name: "too young", targeting: &domain.Targeting{AgeFrom: ptr(40)}, violated: true},
		{name: "too old", targeting: &domain.Targeting{AgeTo: ptr(25)}, violated: true},
		{name: "location match", targeting: &domain.Targeting{Location: ptr("Moscow")}, violated: false},
		{name: "location mismatch", targeting: &domain.Targeting{Location: ptr("Berlin")}, violated: true},
		{name: "empty location ignored", targeting: &domain.Targeting{Location: ptr("")}, violated: false},
		{
			name: "one mismatch is enough",
			targeting: &domain.Targeting{
				Gender:   ptr(domain.GenderMale),
				AgeFrom:  ptr(18),
				Location: ptr("Berlin"),
			},
			violated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Campaign{Targeting: tt.targeting}
			require.Equal(t, tt.violated, TargetingViolated(client, c))
		})
	}
}

func TestTargetingNoRuleNeverViolatesAnyClient(t *testing.T) {
	c := domain.Campaign{}
	clients := []domain.Client{
		{Age: 0, Gender: domain.GenderFemale, Location: ""},
		{Age: 100, Gender: domain.GenderMale, Location: "Nowhere"},
		{Age: 42, Gender: domain.GenderFemale, Location: "Tbilisi"},
	}
	for _, cl := range clients {
		require.False(t, TargetingViolated(cl, c))
	}
}
