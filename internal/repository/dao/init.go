package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Election{},
		&ElectionCategory{},
		&ElectionCandidate{},
		&Voter{},
		&CandidateVote{},
		&VoteLog{},
		&PasswordResetToken{},
	)
}
