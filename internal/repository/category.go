package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository/dao"
)

var (
	ErrCategoryNotFound   = dao.ErrCategoryNotFound
	ErrCategoryNameExists = dao.ErrCategoryNameExists
)

type CategoryDAO interface {
	Insert(ctx context.Context, category dao.ElectionCategory) (dao.ElectionCategory, error)
	FindByID(ctx context.Context, id uint) (dao.ElectionCategory, error)
	FindByElectionAndName(ctx context.Context, electionID uint, name string) (dao.ElectionCategory, error)
	ExistsInElection(ctx context.Context, categoryID, electionID uint) (bool, error)
	Update(ctx context.Context, category dao.ElectionCategory) error
	Delete(ctx context.Context, id uint) error
	ListByElection(ctx context.Context, scope domain.ElectionScope) ([]dao.ElectionCategory, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
	CountCandidates(ctx context.Context, categoryID uint) (int64, error)
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.Insert(ctx, dao.ElectionCategory{
		Name:       category.Name,
		ElectionID: category.ElectionID,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return categoryDaoToDomain(created), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (domain.Category, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return categoryDaoToDomain(found), nil
}

func (r *CategoryRepository) FindByElectionAndName(ctx context.Context, electionID uint, name string) (domain.Category, error) {
	found, err := r.dao.FindByElectionAndName(ctx, electionID, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByElectionAndName -> %w", err)
	}

	return categoryDaoToDomain(found), nil
}

func (r *CategoryRepository) ExistsInElection(ctx context.Context, categoryID, electionID uint) (bool, error) {
	ok, err := r.dao.ExistsInElection(ctx, categoryID, electionID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsInElection -> %w", err)
	}

	return ok, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) error {
	err := r.dao.Update(ctx, dao.ElectionCategory{
		ID:         category.ID,
		Name:       category.Name,
		ElectionID: category.ElectionID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CategoryRepository) ListByElection(ctx context.Context, scope domain.ElectionScope) ([]domain.Category, error) {
	found, err := r.dao.ListByElection(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByElection -> %w", err)
	}

	return categoriesDaoToDomain(found), nil
}

func (r *CategoryRepository) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	total, err := r.dao.CountByElection(ctx, electionID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByElection -> %w", err)
	}

	return total, nil
}

func (r *CategoryRepository) CountCandidates(ctx context.Context, categoryID uint) (int64, error) {
	total, err := r.dao.CountCandidates(ctx, categoryID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountCandidates -> %w", err)
	}

	return total, nil
}
