package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/tokens"
	"github.com/vietanh2810/evote-api/internal/repository"
)

type VoterRepository interface {
	Create(ctx context.Context, voter domain.Voter) (domain.Voter, error)
	FindByID(ctx context.Context, id uint) (domain.Voter, error)
	FindByElectionAndName(ctx context.Context, electionID uint, name string) (domain.Voter, error)
	Update(ctx context.Context, voter domain.Voter) error
	Delete(ctx context.Context, id uint) error
	ListByElection(ctx context.Context, scope domain.ElectionScope) ([]domain.Voter, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
}

type VoterService struct {
	repo      VoterRepository
	elections ElectionFinder
	newToken  func() string
}

func NewVoterService(repo VoterRepository, elections ElectionFinder) *VoterService {
	return &VoterService{
		repo:      repo,
		elections: elections,
		newToken:  tokens.VoterToken,
	}
}

// CreateVoter registers voter on one of userID's elections with a fresh ballot token.
func (s *VoterService) CreateVoter(ctx context.Context, voter domain.Voter, userID uint) (domain.Voter, error) {
	if _, err := electionForWrite(ctx, s.elections, voter.ElectionID, userID); err != nil {
		return domain.Voter{}, err
	}

	if err := s.checkNameFree(ctx, voter.ElectionID, voter.Name, 0); err != nil {
		return domain.Voter{}, err
	}

	voter.Token = s.newToken()

	created, err := s.repo.Create(ctx, voter)
	if err != nil {
		if errors.Is(err, repository.ErrVoterNameExists) {
			return domain.Voter{}, domain.NewFieldError(fieldName, msgVoterNameTaken)
		}

		return domain.Voter{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	reloaded, err := s.repo.FindByID(ctx, created.ID)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reloaded, nil
}

func (s *VoterService) GetVoter(ctx context.Context, id, userID uint) (domain.Voter, error) {
	voter, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVoterNotFound) {
			return domain.Voter{}, ErrVoterNotFound
		}

		return domain.Voter{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !ownsParent(voter.Election, userID) {
		return domain.Voter{}, ErrForbidden
	}

	return voter, nil
}

// UpdateVoter overwrites name, email and election. The token never changes.
func (s *VoterService) UpdateVoter(ctx context.Context, update domain.Voter, userID uint) (domain.Voter, error) {
	existing, err := s.GetVoter(ctx, update.ID, userID)
	if err != nil {
		return domain.Voter{}, err
	}

	if _, err = electionForWrite(ctx, s.elections, update.ElectionID, userID); err != nil {
		return domain.Voter{}, err
	}

	if err = s.checkNameFree(ctx, update.ElectionID, update.Name, existing.ID); err != nil {
		return domain.Voter{}, err
	}

	existing.Name = update.Name
	existing.Email = update.Email
	existing.ElectionID = update.ElectionID

	if err = s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrVoterNameExists) {
			return domain.Voter{}, domain.NewFieldError(fieldName, msgVoterNameTaken)
		}

		return domain.Voter{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	reloaded, err := s.repo.FindByID(ctx, existing.ID)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reloaded, nil
}

func (s *VoterService) DeleteVoter(ctx context.Context, id, userID uint) error {
	if _, err := s.GetVoter(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *VoterService) ListVoters(ctx context.Context, scope domain.ElectionScope, userID uint) ([]domain.Voter, int64, error) {
	if _, err := ownedElection(ctx, s.elections, scope.ElectionID, userID); err != nil {
		return nil, 0, err
	}

	voters, err := s.repo.ListByElection(ctx, scope)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.ListByElection -> %w", err)
	}

	total, err := totalFor(ctx, len(voters), func(ctx context.Context) (int64, error) {
		return s.repo.CountByElection(ctx, scope.ElectionID)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.CountByElection -> %w", err)
	}

	return voters, total, nil
}

func (s *VoterService) checkNameFree(ctx context.Context, electionID uint, name string, exceptID uint) error {
	found, err := s.repo.FindByElectionAndName(ctx, electionID, name)
	if err == nil {
		if found.ID == exceptID {
			return nil
		}

		return domain.NewFieldError(fieldName, msgVoterNameTaken)
	}
	if !errors.Is(err, repository.ErrVoterNotFound) {
		return fmt.Errorf("s.repo.FindByElectionAndName -> %w", err)
	}

	return nil
}
