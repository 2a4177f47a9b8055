package auction

import "github.com/IvanSaydyashev/AdEngine/internal/core/domain"

// SelectBest resolves the winner of a ranked candidate list. The second
// return value is false when there is no inventory to show, which callers
// must treat as a normal outcome rather than an error.
func SelectBest(ranked []domain.Campaign) (domain.Campaign, bool) {
	if len(ranked) == 0 {
		return domain.Campaign{}, false
	}
	return ranked[0], true
}
