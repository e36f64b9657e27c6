package models

import (
	"fmt"
	"time"
)

// HockeyType is the playing surface of an event
type HockeyType string

const (
	HockeyTypeIndoor  HockeyType = "Indoor"
	HockeyTypeOutdoor HockeyType = "Outdoor"
)

// Event represents a tournament, training or festival teams can register for
type Event struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Date                 string     `json:"date"`
	RegistrationDeadline string     `json:"registrationDeadline"`
	Location             string     `json:"location"`
	RegistrationFee      string     `json:"registrationFee"` // e.g. "N$500"
	Description          string     `json:"description"`
	Category             string     `json:"category"` // Tournament, Training, Festival, ...
	HockeyType           HockeyType `json:"hockeyType"`
	MinPlayers           int        `json:"minPlayers"`
}

func (e Event) EntityID() string { return e.ID }

func (e Event) WithID(id string) Event {
	e.ID = id
	return e
}

// ParseDate accepts a plain ISO date (2025-06-15) or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
