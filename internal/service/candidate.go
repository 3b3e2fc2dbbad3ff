package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate domain.Candidate, categoryIDs []uint) (domain.Candidate, error)
	UpdatePhoto(ctx context.Context, id uint, photoURL string) error
	FindByID(ctx context.Context, id uint) (domain.Candidate, error)
	ListByElection(ctx context.Context, scope domain.ElectionScope) ([]domain.Candidate, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
}

type CandidateCategoryRepository interface {
	ExistsInElection(ctx context.Context, categoryID, electionID uint) (bool, error)
}

// PhotoStore moves a temporary upload to permanent storage and returns its reference.
type PhotoStore interface {
	Relocate(ctx context.Context, upload domain.Upload, name string) (string, error)
}

type CandidateService struct {
	repo       CandidateRepository
	elections  ElectionFinder
	categories CandidateCategoryRepository
	photos     PhotoStore
}

func NewCandidateService(
	repo CandidateRepository,
	elections ElectionFinder,
	categories CandidateCategoryRepository,
	photos PhotoStore,
) *CandidateService {
	return &CandidateService{
		repo:       repo,
		elections:  elections,
		categories: categories,
		photos:     photos,
	}
}

// CreateCandidate stores candidate under one of userID's elections, linked to categoryIDs
// which must all belong to that election. When photo is set it is relocated to
// "<candidate id><ext>" before the candidate is returned; a relocation failure leaves the
// candidate in place without a photo.
func (s *CandidateService) CreateCandidate(
	ctx context.Context,
	candidate domain.Candidate,
	categoryIDs []uint,
	photo *domain.Upload,
	userID uint,
) (domain.Candidate, error) {
	errs := domain.FieldErrors{}

	if _, err := electionForWrite(ctx, s.elections, candidate.ElectionID, userID); err != nil {
		var fieldErrs domain.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return domain.Candidate{}, err
		}
		errs.Merge(fieldErrs)
	}

	categoryIDs = uniqueIDs(categoryIDs)
	for _, categoryID := range categoryIDs {
		ok, err := s.categories.ExistsInElection(ctx, categoryID, candidate.ElectionID)
		if err != nil {
			return domain.Candidate{}, fmt.Errorf("s.categories.ExistsInElection -> %w", err)
		}
		if !ok {
			errs.Add(fieldCategories, msgInvalidCategories)
			break
		}
	}

	if len(errs) > 0 {
		return domain.Candidate{}, errs
	}

	created, err := s.repo.Create(ctx, candidate, categoryIDs)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if photo != nil {
		if err = s.attachPhoto(context.WithoutCancel(ctx), created.ID, *photo); err != nil {
			return domain.Candidate{}, err
		}
	}

	reloaded, err := s.repo.FindByID(ctx, created.ID)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reloaded, nil
}

func (s *CandidateService) attachPhoto(ctx context.Context, candidateID uint, photo domain.Upload) error {
	name := fmt.Sprintf("%d%s", candidateID, strings.ToLower(filepath.Ext(photo.OriginalName)))

	ref, err := s.photos.Relocate(ctx, photo, name)
	if err != nil {
		return fmt.Errorf("s.photos.Relocate -> %w", err)
	}

	if err = s.repo.UpdatePhoto(ctx, candidateID, ref); err != nil {
		return fmt.Errorf("s.repo.UpdatePhoto -> %w", err)
	}

	return nil
}

func (s *CandidateService) GetCandidate(ctx context.Context, id, userID uint) (domain.Candidate, error) {
	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return domain.Candidate{}, ErrCandidateNotFound
		}

		return domain.Candidate{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !ownsParent(candidate.Election, userID) {
		return domain.Candidate{}, ErrForbidden
	}

	return candidate, nil
}

func (s *CandidateService) ListCandidates(ctx context.Context, scope domain.ElectionScope, userID uint) ([]domain.Candidate, int64, error) {
	if _, err := ownedElection(ctx, s.elections, scope.ElectionID, userID); err != nil {
		return nil, 0, err
	}

	candidates, err := s.repo.ListByElection(ctx, scope)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.ListByElection -> %w", err)
	}

	total, err := totalFor(ctx, len(candidates), func(ctx context.Context) (int64, error) {
		return s.repo.CountByElection(ctx, scope.ElectionID)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.CountByElection -> %w", err)
	}

	return candidates, total, nil
}

// uniqueIDs drops repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}

	return result
}
