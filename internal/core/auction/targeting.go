// Package auction implements the campaign selection engine: targeting
// checks, per-candidate metrics, min-max normalisation and weighted ranking.
// Everything here is pure computation over its inputs so callers may run
// evaluations concurrently without locking.
package auction

import "github.com/IvanSaydyashev/AdEngine/internal/core/domain"

// Default age bounds applied when a targeting rule leaves them unset.
const (
	defaultAgeFrom = 0
	defaultAgeTo   = 1000
)

// TargetingViolated reports whether the campaign's targeting rule excludes
// the client. A campaign without a rule never violates. Any single mismatch
// (gender, age range, location) is enough.
func TargetingViolated(client domain.Client, c domain.Campaign) bool {
	t := c.Targeting
	if t == nil {
		return false
	}

	if t.Gender != nil && *t.Gender != domain.GenderAll && *t.Gender != client.Gender {
		return true
	}

	ageFrom, ageTo := defaultAgeFrom, defaultAgeTo
	if t.AgeFrom != nil {
		ageFrom = *t.AgeFrom
	}
	if t.AgeTo != nil {
		ageTo = *t.AgeTo
	}
	if client.Age < ageFrom || client.Age > ageTo {
		return true
	}

	if t.Location != nil && *t.Location != "" && *t.Location != client.Location {
		return true
	}

	return false
}
