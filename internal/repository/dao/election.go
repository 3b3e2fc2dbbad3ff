package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/evote-api/internal/domain"
)

var (
	ErrElectionNotFound   = errors.New("election not found")
	ErrElectionNameExists = errors.New("election name already exists")
)

const electionNameConstraint = "idx_elections_user_name"

type Election struct {
	ID         uint               `gorm:"primaryKey"`
	Name       string             `gorm:"not null;uniqueIndex:idx_elections_user_name,priority:2"`
	StartTime  time.Time          `gorm:"not null"`
	EndTime    time.Time          `gorm:"not null"`
	Code       string             `gorm:"not null;uniqueIndex:idx_elections_code"`
	UserID     uint               `gorm:"not null;uniqueIndex:idx_elections_user_name,priority:1"`
	User       User               `gorm:"foreignKey:UserID"`
	Categories []ElectionCategory `gorm:"many2many:election_category_links;"`
	CreatedAt  time.Time          `gorm:"index"`
	UpdatedAt  time.Time
}

// ElectionCategoryLink is a row of the election -> category ordered set.
type ElectionCategoryLink struct {
	ElectionID         uint `gorm:"primaryKey"`
	ElectionCategoryID uint `gorm:"primaryKey"`
}

func (ElectionCategoryLink) TableName() string {
	return "election_category_links"
}

type ElectionDAO struct {
	db *gorm.DB
}

func NewElectionDAO(db *gorm.DB) *ElectionDAO {
	return &ElectionDAO{
		db: db,
	}
}

func ownerSummary(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "name", "email")
}

func categoriesInOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("election_categories.id ASC")
}

func (d *ElectionDAO) Insert(ctx context.Context, election Election) (Election, error) {
	result := d.db.WithContext(ctx).Omit("User", "Categories").Create(&election)
	if result.Error != nil {
		if violates(result.Error, electionNameConstraint) {
			return Election{}, ErrElectionNameExists
		}

		return Election{}, result.Error
	}

	return election, nil
}

func (d *ElectionDAO) FindByID(ctx context.Context, id uint) (Election, error) {
	var election Election

	result := d.db.WithContext(ctx).
		Preload("User", ownerSummary).
		Preload("Categories", categoriesInOrder).
		First(&election, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Election{}, ErrElectionNotFound
		}

		return Election{}, result.Error
	}

	return election, nil
}

func (d *ElectionDAO) FindByOwnerAndName(ctx context.Context, userID uint, name string) (Election, error) {
	var election Election

	result := d.db.WithContext(ctx).First(&election, "user_id = ? AND name = ?", userID, name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Election{}, ErrElectionNotFound
		}

		return Election{}, result.Error
	}

	return election, nil
}

// Update overwrites the mutable fields only; the code and the owner never change.
func (d *ElectionDAO) Update(ctx context.Context, election Election) error {
	result := d.db.WithContext(ctx).
		Model(&Election{ID: election.ID}).
		Select("name", "start_time", "end_time", "updated_at").
		Updates(&Election{
			Name:      election.Name,
			StartTime: election.StartTime,
			EndTime:   election.EndTime,
		})
	if result.Error != nil {
		if violates(result.Error, electionNameConstraint) {
			return ErrElectionNameExists
		}

		return result.Error
	}

	return nil
}

func (d *ElectionDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Election{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrElectionNotFound
	}

	return nil
}

// AppendCategory adds categoryID to the end of the election's category set.
func (d *ElectionDAO) AppendCategory(ctx context.Context, electionID, categoryID uint) error {
	link := ElectionCategoryLink{
		ElectionID:         electionID,
		ElectionCategoryID: categoryID,
	}

	return d.db.WithContext(ctx).Create(&link).Error
}

func electionFilters(q domain.ElectionQuery) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("elections.user_id = ?", q.OwnerID)

		if q.StartTimeBefore != nil {
			tx = tx.Where("elections.start_time <= ?", *q.StartTimeBefore)
		}
		if q.StartTimeAfter != nil {
			tx = tx.Where("elections.start_time >= ?", *q.StartTimeAfter)
		}
		if q.CreatedBefore != nil {
			tx = tx.Where("elections.created_at <= ?", *q.CreatedBefore)
		}
		if q.CreatedAfter != nil {
			tx = tx.Where("elections.created_at >= ?", *q.CreatedAfter)
		}

		switch q.Status {
		case "":
		case domain.StatusOpen:
			tx = tx.Where("elections.start_time <= ? AND elections.end_time >= ?", q.Now, q.Now)
		default:
			tx = tx.Where("(elections.start_time >= ? OR elections.end_time <= ?)", q.Now, q.Now)
		}

		return tx
	}
}

func paginate(page domain.Page) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if page.Limit > 0 {
			tx = tx.Limit(page.Limit).Offset(page.Skip)
		}

		return tx
	}
}

func (d *ElectionDAO) List(ctx context.Context, q domain.ElectionQuery) ([]Election, error) {
	var elections []Election

	result := d.db.WithContext(ctx).
		Scopes(electionFilters(q), paginate(q.Page)).
		Order("elections.created_at DESC").
		Order("elections.id DESC").
		Preload("User", ownerSummary).
		Preload("Categories", categoriesInOrder).
		Find(&elections)
	if result.Error != nil {
		return nil, result.Error
	}

	return elections, nil
}

func (d *ElectionDAO) Count(ctx context.Context, q domain.ElectionQuery) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).Model(&Election{}).Scopes(electionFilters(q)).Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
