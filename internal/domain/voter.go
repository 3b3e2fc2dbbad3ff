package domain

import "time"

type Voter struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Token      string    `json:"token"`
	ElectionID uint      `json:"election_id"`
	Election   *Election `json:"election,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
