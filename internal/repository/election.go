package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository/dao"
)

var (
	ErrElectionNotFound   = dao.ErrElectionNotFound
	ErrElectionNameExists = dao.ErrElectionNameExists
)

type ElectionDAO interface {
	Insert(ctx context.Context, election dao.Election) (dao.Election, error)
	FindByID(ctx context.Context, id uint) (dao.Election, error)
	FindByOwnerAndName(ctx context.Context, userID uint, name string) (dao.Election, error)
	Update(ctx context.Context, election dao.Election) error
	Delete(ctx context.Context, id uint) error
	AppendCategory(ctx context.Context, electionID, categoryID uint) error
	List(ctx context.Context, q domain.ElectionQuery) ([]dao.Election, error)
	Count(ctx context.Context, q domain.ElectionQuery) (int64, error)
}

type ElectionRepository struct {
	dao ElectionDAO
}

func NewElectionRepository(dao ElectionDAO) *ElectionRepository {
	return &ElectionRepository{
		dao: dao,
	}
}

func (r *ElectionRepository) Create(ctx context.Context, election domain.Election) (domain.Election, error) {
	created, err := r.dao.Insert(ctx, dao.Election{
		Name:      election.Name,
		StartTime: election.StartTime.UTC(),
		EndTime:   election.EndTime.UTC(),
		Code:      election.Code,
		UserID:    election.UserID,
	})
	if err != nil {
		return domain.Election{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return electionDaoToDomain(created), nil
}

func (r *ElectionRepository) FindByID(ctx context.Context, id uint) (domain.Election, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Election{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return electionDaoToDomain(found), nil
}

func (r *ElectionRepository) FindByOwnerAndName(ctx context.Context, userID uint, name string) (domain.Election, error) {
	found, err := r.dao.FindByOwnerAndName(ctx, userID, name)
	if err != nil {
		return domain.Election{}, fmt.Errorf("r.dao.FindByOwnerAndName -> %w", err)
	}

	return electionDaoToDomain(found), nil
}

func (r *ElectionRepository) Update(ctx context.Context, election domain.Election) error {
	err := r.dao.Update(ctx, dao.Election{
		ID:        election.ID,
		Name:      election.Name,
		StartTime: election.StartTime.UTC(),
		EndTime:   election.EndTime.UTC(),
	})
	if err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *ElectionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ElectionRepository) AppendCategory(ctx context.Context, electionID, categoryID uint) error {
	if err := r.dao.AppendCategory(ctx, electionID, categoryID); err != nil {
		return fmt.Errorf("r.dao.AppendCategory -> %w", err)
	}

	return nil
}

func (r *ElectionRepository) List(ctx context.Context, q domain.ElectionQuery) ([]domain.Election, error) {
	found, err := r.dao.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return electionsDaoToDomain(found), nil
}

func (r *ElectionRepository) Count(ctx context.Context, q domain.ElectionQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}
