package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/evote-api/internal/domain"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type ElectionCandidate struct {
	ID         uint               `gorm:"primaryKey"`
	Name       string             `gorm:"not null"`
	PhotoURL   string
	ElectionID uint               `gorm:"not null;index"`
	Election   Election           `gorm:"foreignKey:ElectionID"`
	Categories []ElectionCategory `gorm:"many2many:candidate_categories;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CandidateCategoryLink struct {
	ElectionCandidateID uint `gorm:"primaryKey"`
	ElectionCategoryID  uint `gorm:"primaryKey"`
}

func (CandidateCategoryLink) TableName() string {
	return "candidate_categories"
}

type CandidateDAO struct {
	db *gorm.DB
}

func NewCandidateDAO(db *gorm.DB) *CandidateDAO {
	return &CandidateDAO{
		db: db,
	}
}

// InsertWithCategories creates the candidate and then links each category with its own
// write. Both steps share one transaction.
func (d *CandidateDAO) InsertWithCategories(ctx context.Context, candidate ElectionCandidate, categoryIDs []uint) (ElectionCandidate, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Election", "Categories").Create(&candidate).Error; err != nil {
			return err
		}

		for _, categoryID := range categoryIDs {
			link := CandidateCategoryLink{
				ElectionCandidateID: candidate.ID,
				ElectionCategoryID:  categoryID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return ElectionCandidate{}, err
	}

	return candidate, nil
}

func (d *CandidateDAO) UpdatePhoto(ctx context.Context, id uint, photoURL string) error {
	result := d.db.WithContext(ctx).
		Model(&ElectionCandidate{ID: id}).
		Select("photo_url", "updated_at").
		Updates(&ElectionCandidate{PhotoURL: photoURL})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}

	return nil
}

func (d *CandidateDAO) FindByID(ctx context.Context, id uint) (ElectionCandidate, error) {
	var candidate ElectionCandidate

	result := d.db.WithContext(ctx).
		Preload("Election").
		Preload("Categories", categoriesInOrder).
		First(&candidate, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ElectionCandidate{}, ErrCandidateNotFound
		}

		return ElectionCandidate{}, result.Error
	}

	return candidate, nil
}

func (d *CandidateDAO) ListByElection(ctx context.Context, scope domain.ElectionScope) ([]ElectionCandidate, error) {
	var candidates []ElectionCandidate

	result := d.db.WithContext(ctx).
		Where("election_id = ?", scope.ElectionID).
		Scopes(paginate(scope.Page)).
		Order("name ASC").
		Order("id ASC").
		Preload("Election").
		Preload("Categories", categoriesInOrder).
		Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

func (d *CandidateDAO) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).Model(&ElectionCandidate{}).Where("election_id = ?", electionID).Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
