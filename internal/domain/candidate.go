package domain

import "time"

type Candidate struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	PhotoURL   string     `json:"photo_url,omitempty"`
	ElectionID uint       `json:"election_id"`
	Election   *Election  `json:"election,omitempty"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Upload is a photo parked in temporary storage until the candidate exists.
type Upload struct {
	TempPath     string
	OriginalName string
}
