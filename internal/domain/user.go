package domain

import "time"

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the owner projection joined onto elections.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
