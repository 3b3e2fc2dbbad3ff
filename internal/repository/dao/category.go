package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/evote-api/internal/domain"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
)

const categoryNameConstraint = "idx_categories_election_name"

type ElectionCategory struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"not null;uniqueIndex:idx_categories_election_name,priority:2"`
	ElectionID uint      `gorm:"not null;uniqueIndex:idx_categories_election_name,priority:1"`
	Election   Election  `gorm:"foreignKey:ElectionID"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

func (d *CategoryDAO) Insert(ctx context.Context, category ElectionCategory) (ElectionCategory, error) {
	result := d.db.WithContext(ctx).Omit("Election").Create(&category)
	if result.Error != nil {
		if violates(result.Error, categoryNameConstraint) {
			return ElectionCategory{}, ErrCategoryNameExists
		}

		return ElectionCategory{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) FindByID(ctx context.Context, id uint) (ElectionCategory, error) {
	var category ElectionCategory

	result := d.db.WithContext(ctx).Preload("Election").First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ElectionCategory{}, ErrCategoryNotFound
		}

		return ElectionCategory{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) FindByElectionAndName(ctx context.Context, electionID uint, name string) (ElectionCategory, error) {
	var category ElectionCategory

	result := d.db.WithContext(ctx).First(&category, "election_id = ? AND name = ?", electionID, name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ElectionCategory{}, ErrCategoryNotFound
		}

		return ElectionCategory{}, result.Error
	}

	return category, nil
}

// ExistsInElection reports whether categoryID is one of electionID's categories.
func (d *CategoryDAO) ExistsInElection(ctx context.Context, categoryID, electionID uint) (bool, error) {
	var total int64

	result := d.db.WithContext(ctx).
		Model(&ElectionCategory{}).
		Where("id = ? AND election_id = ?", categoryID, electionID).
		Count(&total)
	if result.Error != nil {
		return false, result.Error
	}

	return total > 0, nil
}

// Update writes name and election_id. When the election changes, the category's entry in
// the election category sets moves with it in the same transaction.
func (d *CategoryDAO) Update(ctx context.Context, category ElectionCategory) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current ElectionCategory
		if err := tx.Select("id", "election_id").First(&current, category.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}

			return err
		}

		result := tx.Model(&ElectionCategory{ID: category.ID}).
			Select("name", "election_id", "updated_at").
			Updates(&ElectionCategory{
				Name:       category.Name,
				ElectionID: category.ElectionID,
			})
		if result.Error != nil {
			return result.Error
		}

		if current.ElectionID == category.ElectionID {
			return nil
		}

		if err := tx.Where("election_category_id = ?", category.ID).Delete(&ElectionCategoryLink{}).Error; err != nil {
			return err
		}

		return tx.Create(&ElectionCategoryLink{
			ElectionID:         category.ElectionID,
			ElectionCategoryID: category.ID,
		}).Error
	})
	if err != nil {
		if violates(err, categoryNameConstraint) {
			return ErrCategoryNameExists
		}

		return err
	}

	return nil
}

// CountCandidates returns how many candidates run in the category.
func (d *CategoryDAO) CountCandidates(ctx context.Context, categoryID uint) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).
		Model(&CandidateCategoryLink{}).
		Where("election_category_id = ?", categoryID).
		Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

func (d *CategoryDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ElectionCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (d *CategoryDAO) ListByElection(ctx context.Context, scope domain.ElectionScope) ([]ElectionCategory, error) {
	var categories []ElectionCategory

	result := d.db.WithContext(ctx).
		Where("election_id = ?", scope.ElectionID).
		Scopes(paginate(scope.Page)).
		Order("created_at DESC").
		Order("id DESC").
		Preload("Election").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).Model(&ElectionCategory{}).Where("election_id = ?", electionID).Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
