package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository"
)

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	FindByID(ctx context.Context, id uint) (domain.Category, error)
	FindByElectionAndName(ctx context.Context, electionID uint, name string) (domain.Category, error)
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, id uint) error
	ListByElection(ctx context.Context, scope domain.ElectionScope) ([]domain.Category, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
	CountCandidates(ctx context.Context, categoryID uint) (int64, error)
}

type CategoryElectionRepository interface {
	ElectionFinder
	AppendCategory(ctx context.Context, electionID, categoryID uint) error
}

// CategoryUpdate carries the fields of an update request. A nil ElectionID keeps the
// current election.
type CategoryUpdate struct {
	Name       string
	ElectionID *uint
}

type CategoryService struct {
	repo      CategoryRepository
	elections CategoryElectionRepository
}

func NewCategoryService(repo CategoryRepository, elections CategoryElectionRepository) *CategoryService {
	return &CategoryService{
		repo:      repo,
		elections: elections,
	}
}

// CreateCategory adds category to one of userID's elections and records it in the
// election's category set. Failing to record it is logged and does not fail the call.
func (s *CategoryService) CreateCategory(ctx context.Context, category domain.Category, userID uint) (domain.Category, error) {
	if _, err := electionForWrite(ctx, s.elections, category.ElectionID, userID); err != nil {
		return domain.Category{}, err
	}

	if err := s.checkNameFree(ctx, category.ElectionID, category.Name, 0); err != nil {
		return domain.Category{}, err
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNameExists) {
			return domain.Category{}, domain.NewFieldError(fieldName, msgCategoryNameTaken)
		}

		return domain.Category{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.appendToElection(ctx, created)

	reloaded, err := s.repo.FindByID(ctx, created.ID)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reloaded, nil
}

func (s *CategoryService) appendToElection(ctx context.Context, category domain.Category) {
	err := s.elections.AppendCategory(context.WithoutCancel(ctx), category.ElectionID, category.ID)
	if err != nil {
		zap.L().Warn("category created but not linked to its election",
			zap.Uint("category_id", category.ID),
			zap.Uint("election_id", category.ElectionID),
			zap.Error(err),
		)
	}
}

func (s *CategoryService) GetCategory(ctx context.Context, id, userID uint) (domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}

		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !ownsParent(category.Election, userID) {
		return domain.Category{}, ErrForbidden
	}

	return category, nil
}

// UpdateCategory renames the category and optionally moves it to another election of the
// same owner. A category that candidates run in stays in its election.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, update CategoryUpdate, userID uint) (domain.Category, error) {
	existing, err := s.GetCategory(ctx, id, userID)
	if err != nil {
		return domain.Category{}, err
	}

	electionID := existing.ElectionID
	if update.ElectionID != nil && *update.ElectionID != electionID {
		if _, err = electionForWrite(ctx, s.elections, *update.ElectionID, userID); err != nil {
			return domain.Category{}, err
		}

		candidates, err := s.repo.CountCandidates(ctx, existing.ID)
		if err != nil {
			return domain.Category{}, fmt.Errorf("s.repo.CountCandidates -> %w", err)
		}
		if candidates > 0 {
			return domain.Category{}, domain.NewFieldError(fieldElectionID, msgCategoryHasCandidates)
		}

		electionID = *update.ElectionID
	}

	if err = s.checkNameFree(ctx, electionID, update.Name, existing.ID); err != nil {
		return domain.Category{}, err
	}

	existing.Name = update.Name
	existing.ElectionID = electionID

	if err = s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrCategoryNameExists) {
			return domain.Category{}, domain.NewFieldError(fieldName, msgCategoryNameTaken)
		}

		return domain.Category{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	reloaded, err := s.repo.FindByID(ctx, existing.ID)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reloaded, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id, userID uint) error {
	if _, err := s.GetCategory(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *CategoryService) ListCategories(ctx context.Context, scope domain.ElectionScope, userID uint) ([]domain.Category, int64, error) {
	if _, err := ownedElection(ctx, s.elections, scope.ElectionID, userID); err != nil {
		return nil, 0, err
	}

	categories, err := s.repo.ListByElection(ctx, scope)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.ListByElection -> %w", err)
	}

	total, err := totalFor(ctx, len(categories), func(ctx context.Context) (int64, error) {
		return s.repo.CountByElection(ctx, scope.ElectionID)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.CountByElection -> %w", err)
	}

	return categories, total, nil
}

func (s *CategoryService) checkNameFree(ctx context.Context, electionID uint, name string, exceptID uint) error {
	found, err := s.repo.FindByElectionAndName(ctx, electionID, name)
	if err == nil {
		if found.ID == exceptID {
			return nil
		}

		return domain.NewFieldError(fieldName, msgCategoryNameTaken)
	}
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		return fmt.Errorf("s.repo.FindByElectionAndName -> %w", err)
	}

	return nil
}
