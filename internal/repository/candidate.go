package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository/dao"
)

var ErrCandidateNotFound = dao.ErrCandidateNotFound

type CandidateDAO interface {
	InsertWithCategories(ctx context.Context, candidate dao.ElectionCandidate, categoryIDs []uint) (dao.ElectionCandidate, error)
	UpdatePhoto(ctx context.Context, id uint, photoURL string) error
	FindByID(ctx context.Context, id uint) (dao.ElectionCandidate, error)
	ListByElection(ctx context.Context, scope domain.ElectionScope) ([]dao.ElectionCandidate, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
}

type CandidateRepository struct {
	dao CandidateDAO
}

func NewCandidateRepository(dao CandidateDAO) *CandidateRepository {
	return &CandidateRepository{
		dao: dao,
	}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate domain.Candidate, categoryIDs []uint) (domain.Candidate, error) {
	created, err := r.dao.InsertWithCategories(ctx, dao.ElectionCandidate{
		Name:       candidate.Name,
		ElectionID: candidate.ElectionID,
	}, categoryIDs)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.InsertWithCategories -> %w", err)
	}

	return candidateDaoToDomain(created), nil
}

func (r *CandidateRepository) UpdatePhoto(ctx context.Context, id uint, photoURL string) error {
	if err := r.dao.UpdatePhoto(ctx, id, photoURL); err != nil {
		return fmt.Errorf("r.dao.UpdatePhoto -> %w", err)
	}

	return nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uint) (domain.Candidate, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return candidateDaoToDomain(found), nil
}

func (r *CandidateRepository) ListByElection(ctx context.Context, scope domain.ElectionScope) ([]domain.Candidate, error) {
	found, err := r.dao.ListByElection(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByElection -> %w", err)
	}

	return candidatesDaoToDomain(found), nil
}

func (r *CandidateRepository) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	total, err := r.dao.CountByElection(ctx, electionID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByElection -> %w", err)
	}

	return total, nil
}
