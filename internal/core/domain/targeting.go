package domain

// Targeting restricts who may see a campaign. Every field is optional; a nil
// field does not constrain the audience at all. A nil *Targeting on a
// campaign means universal eligibility. Stored as JSONB with omitted nulls.
type Targeting struct {
	Gender   *Gender `json:"gender,omitempty"`
	AgeFrom  *int    `json:"age_from,omitempty"`
	AgeTo    *int    `json:"age_to,omitempty"`
	Location *string `json:"location,omitempty"`
}
