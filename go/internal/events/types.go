package events

import "github.com/mcdev12/hockeyfed/go/internal/models"

// CreateEventRequest represents the data needed to schedule a new event
type CreateEventRequest struct {
	Title                string            `json:"title"`
	Date                 string            `json:"date"`
	RegistrationDeadline string            `json:"registrationDeadline"`
	Location             string            `json:"location"`
	RegistrationFee      string            `json:"registrationFee"`
	Description          string            `json:"description"`
	Category             string            `json:"category"`
	HockeyType           models.HockeyType `json:"hockeyType"`
	MinPlayers           int               `json:"minPlayers"`
}

func (r CreateEventRequest) toModel() models.Event {
	return models.Event{
		Title:                r.Title,
		Date:                 r.Date,
		RegistrationDeadline: r.RegistrationDeadline,
		Location:             r.Location,
		RegistrationFee:      r.RegistrationFee,
		Description:          r.Description,
		Category:             r.Category,
		HockeyType:           r.HockeyType,
		MinPlayers:           r.MinPlayers,
	}
}
