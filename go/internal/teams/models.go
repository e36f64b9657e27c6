package teams

import "github.com/mcdev12/hockeyfed/go/internal/models"

// CreateTeamRequest represents the data needed to register a new team
type CreateTeamRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Division     string `json:"division"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

func (r CreateTeamRequest) toModel() models.Team {
	return models.Team{
		Name:         r.Name,
		Category:     r.Category,
		Division:     r.Division,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
	}
}

// TeamFilter represents filtering options for team queries
type TeamFilter struct {
	Category *string `json:"category,omitempty"`
	Division *string `json:"division,omitempty"`
}

func (f TeamFilter) matches(t models.Team) bool {
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.Division != nil && t.Division != *f.Division {
		return false
	}
	return true
}
