package domain

import "github.com/google/uuid"

// Gender is the declared gender of a client. Campaign targeting may use
// GenderAll as a wildcard; clients themselves are MALE or FEMALE.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderAll    Gender = "ALL"
)

// Valid reports whether g is a recognised gender value.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAll:
		return true
	}
	return false
}

// Client is an end user ads are served to. Immutable during one auction
// evaluation; updated only through the bulk upsert endpoint.
type Client struct {
	ID       uuid.UUID
	Login    string
	Age      int
	Location string
	Gender   Gender
}
