package domain

import "time"

type Election struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	StartTime  time.Time    `json:"start_time"`
	EndTime    time.Time    `json:"end_time"`
	Code       string       `json:"code"`
	UserID     uint         `json:"user_id"`
	User       *UserSummary `json:"user,omitempty"`
	Categories []Category   `json:"categories"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (e Election) OwnedBy(userID uint) bool {
	return e.UserID == userID
}
