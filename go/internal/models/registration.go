package models

import "time"

// EventRegistration records a team entering an event with a list of players
type EventRegistration struct {
	ID               string    `json:"id"`
	EventID          string    `json:"eventId"`
	TeamID           string    `json:"teamId"`
	PlayerIDs        []string  `json:"playerIds"`
	AcceptedTerms    bool      `json:"acceptedTerms"`
	RegistrationDate time.Time `json:"registrationDate"` // set once on creation
}

func (r EventRegistration) EntityID() string { return r.ID }

func (r EventRegistration) WithID(id string) EventRegistration {
	r.ID = id
	return r
}
