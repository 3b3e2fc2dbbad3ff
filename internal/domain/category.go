package domain

import "time"

type Category struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	ElectionID uint      `json:"election_id"`
	Election   *Election `json:"election,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
