package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vietanh2810/evote-api/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "dao.db")), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc:                                  func() time.Time { return time.Now().UTC() },
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func seedElection(t *testing.T, db *gorm.DB, userID uint, name string, start, end time.Time) Election {
	t.Helper()

	e, err := NewElectionDAO(db).Insert(context.Background(), Election{
		Name:      name,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		Code:      name + "-code",
		UserID:    userID,
	})
	require.NoError(t, err)

	return e
}

func TestUserDAO(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	u, err := d.Insert(ctx, User{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))

	_, err = d.Insert(ctx, User{Name: "Ada 2", Email: "ada@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	found, err := d.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = d.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestElectionDAO(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewElectionDAO(db)

	owner, err := NewUserDAO(db).Insert(ctx, User{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	now := time.Now().UTC()
	running := seedElection(t, db, owner.ID, "running", now.Add(-time.Hour), now.Add(time.Hour))
	seedElection(t, db, owner.ID, "upcoming", now.Add(24*time.Hour), now.Add(48*time.Hour))
	seedElection(t, db, owner.ID, "finished", now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	seedElection(t, db, owner.ID+1, "someone else's", now.Add(-time.Hour), now.Add(time.Hour))

	t.Run("name is unique per owner", func(t *testing.T) {
		_, err := d.Insert(ctx, Election{Name: "running", Code: "dup-1", UserID: owner.ID, StartTime: now, EndTime: now})
		assert.ErrorIs(t, err, ErrElectionNameExists)

		_, err = d.Insert(ctx, Election{Name: "running", Code: "dup-2", UserID: owner.ID + 2, StartTime: now, EndTime: now})
		assert.NoError(t, err)
	})

	t.Run("find joins the owner summary", func(t *testing.T) {
		e, err := d.FindByID(ctx, running.ID)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", e.User.Email)
		assert.Empty(t, e.User.Password)

		_, err = d.FindByID(ctx, 999)
		assert.ErrorIs(t, err, ErrElectionNotFound)
	})

	t.Run("status filters", func(t *testing.T) {
		names := func(q domain.ElectionQuery) []string {
			list, err := d.List(ctx, q)
			require.NoError(t, err)

			var result []string
			for _, e := range list {
				result = append(result, e.Name)
			}
			return result
		}

		q := domain.ElectionQuery{OwnerID: owner.ID, Now: now}
		assert.Equal(t, []string{"finished", "upcoming", "running"}, names(q))

		q.Status = domain.StatusOpen
		assert.Equal(t, []string{"running"}, names(q))

		q.Status = "closed"
		assert.Equal(t, []string{"finished", "upcoming"}, names(q))

		total, err := d.Count(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		q.Status = ""
		q.Page = domain.Page{Skip: 1, Limit: 1}
		assert.Equal(t, []string{"upcoming"}, names(q))
	})

	t.Run("categories keep insertion order", func(t *testing.T) {
		categories := NewCategoryDAO(db)
		for _, name := range []string{"Chair", "Treasurer"} {
			c, err := categories.Insert(ctx, ElectionCategory{Name: name, ElectionID: running.ID})
			require.NoError(t, err)
			require.NoError(t, d.AppendCategory(ctx, running.ID, c.ID))
		}

		e, err := d.FindByID(ctx, running.ID)
		require.NoError(t, err)
		require.Len(t, e.Categories, 2)
		assert.Equal(t, "Chair", e.Categories[0].Name)
		assert.Equal(t, "Treasurer", e.Categories[1].Name)
	})

	t.Run("update leaves the code alone", func(t *testing.T) {
		require.NoError(t, d.Update(ctx, Election{ID: running.ID, Name: "renamed", Code: "ignored", StartTime: now, EndTime: now}))

		e, err := d.FindByID(ctx, running.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", e.Name)
		assert.Equal(t, "running-code", e.Code)
	})

	t.Run("delete does not cascade", func(t *testing.T) {
		require.NoError(t, d.Delete(ctx, running.ID))
		assert.ErrorIs(t, d.Delete(ctx, running.ID), ErrElectionNotFound)

		total, err := NewCategoryDAO(db).CountByElection(ctx, running.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}

func TestCategoryDAO(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewCategoryDAO(db)

	now := time.Now().UTC()
	e1 := seedElection(t, db, 1, "E1", now, now.Add(time.Hour))
	e2 := seedElection(t, db, 1, "E2", now, now.Add(time.Hour))

	chair, err := d.Insert(ctx, ElectionCategory{Name: "Chair", ElectionID: e1.ID})
	require.NoError(t, err)

	_, err = d.Insert(ctx, ElectionCategory{Name: "Chair", ElectionID: e1.ID})
	assert.ErrorIs(t, err, ErrCategoryNameExists)

	other, err := d.Insert(ctx, ElectionCategory{Name: "Chair", ElectionID: e2.ID})
	require.NoError(t, err)

	ok, err := d.ExistsInElection(ctx, chair.ID, e1.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.ExistsInElection(ctx, other.ID, e1.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, d.Update(ctx, ElectionCategory{ID: other.ID, Name: "Chair", ElectionID: e1.ID}), ErrCategoryNameExists)

	found, err := d.FindByID(ctx, chair.ID)
	require.NoError(t, err)
	assert.Equal(t, "E1", found.Election.Name)

	t.Run("moving updates the election category sets", func(t *testing.T) {
		elections := NewElectionDAO(db)
		require.NoError(t, elections.AppendCategory(ctx, e1.ID, chair.ID))

		require.NoError(t, d.Update(ctx, ElectionCategory{ID: chair.ID, Name: "Head", ElectionID: e2.ID}))

		from, err := elections.FindByID(ctx, e1.ID)
		require.NoError(t, err)
		assert.Empty(t, from.Categories)

		to, err := elections.FindByID(ctx, e2.ID)
		require.NoError(t, err)
		require.Len(t, to.Categories, 1)
		assert.Equal(t, "Head", to.Categories[0].Name)
	})

	t.Run("count candidates", func(t *testing.T) {
		total, err := d.CountCandidates(ctx, other.ID)
		require.NoError(t, err)
		assert.Zero(t, total)

		_, err = NewCandidateDAO(db).InsertWithCategories(ctx, ElectionCandidate{Name: "Grace", ElectionID: e2.ID}, []uint{other.ID})
		require.NoError(t, err)

		total, err = d.CountCandidates(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	assert.ErrorIs(t, d.Update(ctx, ElectionCategory{ID: 999, Name: "Ghost", ElectionID: e1.ID}), ErrCategoryNotFound)
	assert.ErrorIs(t, d.Delete(ctx, 999), ErrCategoryNotFound)
}

func TestCandidateDAO_InsertWithCategories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewCandidateDAO(db)

	now := time.Now().UTC()
	e := seedElection(t, db, 1, "E1", now, now.Add(time.Hour))
	chair, err := NewCategoryDAO(db).Insert(ctx, ElectionCategory{Name: "Chair", ElectionID: e.ID})
	require.NoError(t, err)
	treasurer, err := NewCategoryDAO(db).Insert(ctx, ElectionCategory{Name: "Treasurer", ElectionID: e.ID})
	require.NoError(t, err)

	t.Run("links every category", func(t *testing.T) {
		c, err := d.InsertWithCategories(ctx, ElectionCandidate{Name: "Grace", ElectionID: e.ID}, []uint{treasurer.ID, chair.ID})
		require.NoError(t, err)

		require.NoError(t, d.UpdatePhoto(ctx, c.ID, "1.png"))

		found, err := d.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "1.png", found.PhotoURL)
		assert.Equal(t, "E1", found.Election.Name)
		require.Len(t, found.Categories, 2)
		assert.Equal(t, "Chair", found.Categories[0].Name)
	})

	t.Run("a failed link rolls the candidate back", func(t *testing.T) {
		_, err := d.InsertWithCategories(ctx, ElectionCandidate{Name: "Ada", ElectionID: e.ID}, []uint{chair.ID, chair.ID})
		require.Error(t, err)

		var total int64
		require.NoError(t, db.Model(&ElectionCandidate{}).Where("name = ?", "Ada").Count(&total).Error)
		assert.Zero(t, total)
	})

	assert.ErrorIs(t, d.UpdatePhoto(ctx, 999, "x.png"), ErrCandidateNotFound)
}

func TestVoterDAO(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewVoterDAO(db)

	now := time.Now().UTC()
	e := seedElection(t, db, 1, "E1", now, now.Add(time.Hour))

	v, err := d.Insert(ctx, Voter{Name: "linus", Email: "linus@example.com", Token: "t1", ElectionID: e.ID})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Voter{Name: "linus", Email: "other@example.com", Token: "t2", ElectionID: e.ID})
	assert.ErrorIs(t, err, ErrVoterNameExists)

	found, err := d.FindByElectionAndName(ctx, e.ID, "linus")
	require.NoError(t, err)
	assert.Equal(t, v.ID, found.ID)

	require.NoError(t, d.Delete(ctx, v.ID))
	_, err = d.FindByID(ctx, v.ID)
	assert.ErrorIs(t, err, ErrVoterNotFound)
}
