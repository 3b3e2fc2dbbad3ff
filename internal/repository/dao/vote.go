package dao

import "time"

// The tables below are part of the schema so ballots can be recorded later.
// Nothing writes to them yet.

type CandidateVote struct {
	ID                 uint `gorm:"primaryKey"`
	ElectionCategoryID uint `gorm:"index"`
	CandidateID        uint `gorm:"index"`
	Votes              int  `gorm:"not null;default:0"`
}

type VoteLog struct {
	ID                 uint `gorm:"primaryKey"`
	VoterID            uint `gorm:"index"`
	ElectionCategoryID uint `gorm:"index"`
	CandidateID        uint `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type PasswordResetToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Token     string `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
