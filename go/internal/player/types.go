package player

import "github.com/mcdev12/hockeyfed/go/internal/models"

// PlayerPatch lists the fields to overwrite on an existing player. Nil
// fields keep their stored value. TeamID pointing at "" detaches the player
// from its team.
type PlayerPatch struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	TeamID       *string `json:"teamId,omitempty"`
	Position     *string `json:"position,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

func (p PlayerPatch) apply(dst *models.Player) {
	setIf(&dst.FirstName, p.FirstName)
	setIf(&dst.LastName, p.LastName)
	setIf(&dst.DateOfBirth, p.DateOfBirth)
	setIf(&dst.Gender, p.Gender)
	setIf(&dst.Position, p.Position)
	setIf(&dst.Email, p.Email)
	setIf(&dst.Phone, p.Phone)
	if p.TeamID != nil {
		if *p.TeamID == "" {
			dst.TeamID = nil
		} else {
			id := *p.TeamID
			dst.TeamID = &id
		}
	}
	if p.Bio != nil {
		bio := *p.Bio
		dst.Bio = &bio
	}
	if p.ProfileImage != nil {
		img := *p.ProfileImage
		dst.ProfileImage = &img
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// PlayerWithTeam is a player joined with its team name for listings
type PlayerWithTeam struct {
	models.Player
	TeamName string `json:"teamName"`
	Age      *int   `json:"age,omitempty"`
}

// CreatePlayerRequest represents the data needed to register a new player
type CreatePlayerRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	DateOfBirth  string  `json:"dateOfBirth"`
	Gender       string  `json:"gender"`
	TeamID       *string `json:"teamId"`
	Position     string  `json:"position"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Bio          *string `json:"bio,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

func (r CreatePlayerRequest) toModel() models.Player {
	return models.Player{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DateOfBirth:  r.DateOfBirth,
		Gender:       r.Gender,
		TeamID:       r.TeamID,
		Position:     r.Position,
		Email:        r.Email,
		Phone:        r.Phone,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
	}
}
