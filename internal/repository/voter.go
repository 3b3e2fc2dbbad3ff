package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository/dao"
)

var (
	ErrVoterNotFound   = dao.ErrVoterNotFound
	ErrVoterNameExists = dao.ErrVoterNameExists
)

type VoterDAO interface {
	Insert(ctx context.Context, voter dao.Voter) (dao.Voter, error)
	FindByID(ctx context.Context, id uint) (dao.Voter, error)
	FindByElectionAndName(ctx context.Context, electionID uint, name string) (dao.Voter, error)
	Update(ctx context.Context, voter dao.Voter) error
	Delete(ctx context.Context, id uint) error
	ListByElection(ctx context.Context, scope domain.ElectionScope) ([]dao.Voter, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
}

type VoterRepository struct {
	dao VoterDAO
}

func NewVoterRepository(dao VoterDAO) *VoterRepository {
	return &VoterRepository{
		dao: dao,
	}
}

func (r *VoterRepository) Create(ctx context.Context, voter domain.Voter) (domain.Voter, error) {
	created, err := r.dao.Insert(ctx, dao.Voter{
		Name:       voter.Name,
		Email:      voter.Email,
		Token:      voter.Token,
		ElectionID: voter.ElectionID,
	})
	if err != nil {
		return domain.Voter{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return voterDaoToDomain(created), nil
}

func (r *VoterRepository) FindByID(ctx context.Context, id uint) (domain.Voter, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return voterDaoToDomain(found), nil
}

func (r *VoterRepository) FindByElectionAndName(ctx context.Context, electionID uint, name string) (domain.Voter, error) {
	found, err := r.dao.FindByElectionAndName(ctx, electionID, name)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("r.dao.FindByElectionAndName -> %w", err)
	}

	return voterDaoToDomain(found), nil
}

func (r *VoterRepository) Update(ctx context.Context, voter domain.Voter) error {
	err := r.dao.Update(ctx, dao.Voter{
		ID:         voter.ID,
		Name:       voter.Name,
		Email:      voter.Email,
		ElectionID: voter.ElectionID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *VoterRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *VoterRepository) ListByElection(ctx context.Context, scope domain.ElectionScope) ([]domain.Voter, error) {
	found, err := r.dao.ListByElection(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByElection -> %w", err)
	}

	return votersDaoToDomain(found), nil
}

func (r *VoterRepository) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	total, err := r.dao.CountByElection(ctx, electionID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByElection -> %w", err)
	}

	return total, nil
}
