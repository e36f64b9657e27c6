package registrations

// RegisterTeamRequest enters a team into an event
type RegisterTeamRequest struct {
	EventID       string `json:"eventId"`
	TeamID        string `json:"teamId"`
	AcceptedTerms bool   `json:"acceptedTerms"`
}
