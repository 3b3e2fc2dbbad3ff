package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/evote-api/internal/domain"
)

var (
	ErrVoterNotFound   = errors.New("voter not found")
	ErrVoterNameExists = errors.New("voter name already exists")
)

const voterNameConstraint = "idx_voters_election_name"

type Voter struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"not null;uniqueIndex:idx_voters_election_name,priority:2"`
	Email      string    `gorm:"not null"`
	Token      string    `gorm:"not null;uniqueIndex:idx_voters_token"`
	ElectionID uint      `gorm:"not null;uniqueIndex:idx_voters_election_name,priority:1"`
	Election   Election  `gorm:"foreignKey:ElectionID"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

type VoterDAO struct {
	db *gorm.DB
}

func NewVoterDAO(db *gorm.DB) *VoterDAO {
	return &VoterDAO{
		db: db,
	}
}

func (d *VoterDAO) Insert(ctx context.Context, voter Voter) (Voter, error) {
	result := d.db.WithContext(ctx).Omit("Election").Create(&voter)
	if result.Error != nil {
		if violates(result.Error, voterNameConstraint) {
			return Voter{}, ErrVoterNameExists
		}

		return Voter{}, result.Error
	}

	return voter, nil
}

func (d *VoterDAO) FindByID(ctx context.Context, id uint) (Voter, error) {
	var voter Voter

	result := d.db.WithContext(ctx).Preload("Election").First(&voter, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Voter{}, ErrVoterNotFound
		}

		return Voter{}, result.Error
	}

	return voter, nil
}

func (d *VoterDAO) FindByElectionAndName(ctx context.Context, electionID uint, name string) (Voter, error) {
	var voter Voter

	result := d.db.WithContext(ctx).First(&voter, "election_id = ? AND name = ?", electionID, name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Voter{}, ErrVoterNotFound
		}

		return Voter{}, result.Error
	}

	return voter, nil
}

func (d *VoterDAO) Update(ctx context.Context, voter Voter) error {
	result := d.db.WithContext(ctx).
		Model(&Voter{ID: voter.ID}).
		Select("name", "email", "election_id", "updated_at").
		Updates(&Voter{
			Name:       voter.Name,
			Email:      voter.Email,
			ElectionID: voter.ElectionID,
		})
	if result.Error != nil {
		if violates(result.Error, voterNameConstraint) {
			return ErrVoterNameExists
		}

		return result.Error
	}

	return nil
}

func (d *VoterDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Voter{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVoterNotFound
	}

	return nil
}

func (d *VoterDAO) ListByElection(ctx context.Context, scope domain.ElectionScope) ([]Voter, error) {
	var voters []Voter

	result := d.db.WithContext(ctx).
		Where("election_id = ?", scope.ElectionID).
		Scopes(paginate(scope.Page)).
		Order("created_at DESC").
		Order("id DESC").
		Preload("Election").
		Find(&voters)
	if result.Error != nil {
		return nil, result.Error
	}

	return voters, nil
}

func (d *VoterDAO) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).Model(&Voter{}).Where("election_id = ?", electionID).Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
