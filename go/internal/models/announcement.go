package models

import "time"

// Announcement is a federation notice published by an administrator
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"` // username of the author
	CreatedAt time.Time `json:"createdAt"`
	Important bool      `json:"important"`
}

func (a Announcement) EntityID() string { return a.ID }

func (a Announcement) WithID(id string) Announcement {
	a.ID = id
	return a
}
