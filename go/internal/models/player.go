package models

import "time"

// UnknownTeam is shown for players whose team cannot be resolved
const UnknownTeam = "Unknown Team"

// Player represents a registered player. TeamID may be nil or point at a
// team that no longer exists; neither is an error.
type Player struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	DateOfBirth  string  `json:"dateOfBirth"` // YYYY-MM-DD
	Gender       string  `json:"gender"`
	TeamID       *string `json:"teamId"`
	Position     string  `json:"position"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Bio          *string `json:"bio,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

func (p Player) EntityID() string { return p.ID }

func (p Player) WithID(id string) Player {
	p.ID = id
	return p
}

// FullName returns "First Last"
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Age returns the player's age in whole years at now. ok is false when the
// date of birth cannot be parsed.
func (p Player) Age(now time.Time) (age int, ok bool) {
	dob, err := ParseDate(p.DateOfBirth)
	if err != nil {
		return 0, false
	}
	age = now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age, true
}
