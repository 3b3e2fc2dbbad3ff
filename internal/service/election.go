package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/tokens"
	"github.com/vietanh2810/evote-api/internal/repository"
)

type ElectionRepository interface {
	Create(ctx context.Context, election domain.Election) (domain.Election, error)
	FindByID(ctx context.Context, id uint) (domain.Election, error)
	FindByOwnerAndName(ctx context.Context, userID uint, name string) (domain.Election, error)
	Update(ctx context.Context, election domain.Election) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q domain.ElectionQuery) ([]domain.Election, error)
	Count(ctx context.Context, q domain.ElectionQuery) (int64, error)
}

type ElectionService struct {
	repo    ElectionRepository
	newCode func() string
}

func NewElectionService(repo ElectionRepository) *ElectionService {
	return &ElectionService{
		repo:    repo,
		newCode: tokens.ElectionCode,
	}
}

// CreateElection persists election for its owner with a freshly generated code and returns
// it joined with the owner summary.
func (s *ElectionService) CreateElection(ctx context.Context, election domain.Election) (domain.Election, error) {
	if err := s.checkNameFree(ctx, election.UserID, election.Name, 0); err != nil {
		return domain.Election{}, err
	}

	election.Code = s.newCode()

	created, err := s.repo.Create(ctx, election)
	if err != nil {
		if errors.Is(err, repository.ErrElectionNameExists) {
			return domain.Election{}, domain.NewFieldError(fieldName, msgElectionNameTaken)
		}

		return domain.Election{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	reloaded, err := s.repo.FindByID(ctx, created.ID)
	if err != nil {
		return domain.Election{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reloaded, nil
}

func (s *ElectionService) GetElection(ctx context.Context, id, userID uint) (domain.Election, error) {
	return ownedElection(ctx, s.repo, id, userID)
}

// UpdateElection overwrites name, start and end time. The code never changes.
func (s *ElectionService) UpdateElection(ctx context.Context, update domain.Election, userID uint) (domain.Election, error) {
	existing, err := ownedElection(ctx, s.repo, update.ID, userID)
	if err != nil {
		return domain.Election{}, err
	}

	if err = s.checkNameFree(ctx, userID, update.Name, existing.ID); err != nil {
		return domain.Election{}, err
	}

	existing.Name = update.Name
	existing.StartTime = update.StartTime
	existing.EndTime = update.EndTime

	if err = s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrElectionNameExists) {
			return domain.Election{}, domain.NewFieldError(fieldName, msgElectionNameTaken)
		}

		return domain.Election{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	reloaded, err := s.repo.FindByID(ctx, existing.ID)
	if err != nil {
		return domain.Election{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reloaded, nil
}

// DeleteElection removes the election only. Its categories, candidates and voters stay.
func (s *ElectionService) DeleteElection(ctx context.Context, id, userID uint) error {
	if _, err := ownedElection(ctx, s.repo, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// ListElections returns one page of q and the total number of matches.
func (s *ElectionService) ListElections(ctx context.Context, q domain.ElectionQuery) ([]domain.Election, int64, error) {
	elections, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	total, err := totalFor(ctx, len(elections), func(ctx context.Context) (int64, error) {
		return s.repo.Count(ctx, q)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.Count -> %w", err)
	}

	return elections, total, nil
}

// checkNameFree fails when another election of userID, other than exceptID, is called name.
func (s *ElectionService) checkNameFree(ctx context.Context, userID uint, name string, exceptID uint) error {
	found, err := s.repo.FindByOwnerAndName(ctx, userID, name)
	if err == nil {
		if found.ID == exceptID {
			return nil
		}

		return domain.NewFieldError(fieldName, msgElectionNameTaken)
	}
	if !errors.Is(err, repository.ErrElectionNotFound) {
		return fmt.Errorf("s.repo.FindByOwnerAndName -> %w", err)
	}

	return nil
}
