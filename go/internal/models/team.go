package models

// Team represents a club registered with the federation
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Division     string `json:"division"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

func (t Team) EntityID() string { return t.ID }

func (t Team) WithID(id string) Team {
	t.ID = id
	return t
}
