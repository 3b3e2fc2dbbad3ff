package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/evote-api/internal/domain"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("links the category to its election", func(t *testing.T) {
		elections := newFakeElections()
		categories := newFakeCategories(elections)
		svc := NewCategoryService(categories, elections)
		e := elections.seed(1, "E1")

		created, err := svc.CreateCategory(ctx, domain.Category{Name: "President", ElectionID: e.ID}, 1)
		require.NoError(t, err)
		require.NotNil(t, created.Election)
		assert.Equal(t, e.ID, created.Election.ID)
		assert.Equal(t, []uint{created.ID}, elections.links[e.ID])
	})

	t.Run("unknown or foreign election collapses to election_id", func(t *testing.T) {
		elections := newFakeElections()
		categories := newFakeCategories(elections)
		svc := NewCategoryService(categories, elections)
		foreign := elections.seed(2, "F1")

		for _, electionID := range []uint{999, foreign.ID} {
			_, err := svc.CreateCategory(ctx, domain.Category{Name: "President", ElectionID: electionID}, 1)

			var fieldErrs domain.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, []string{msgNoOwnedElection}, fieldErrs[fieldElectionID])
		}
		assert.Empty(t, categories.rows)
	})

	t.Run("duplicate name within the election", func(t *testing.T) {
		elections := newFakeElections()
		categories := newFakeCategories(elections)
		svc := NewCategoryService(categories, elections)
		e := elections.seed(1, "E1")
		categories.seed(e.ID, "President")

		_, err := svc.CreateCategory(ctx, domain.Category{Name: "President", ElectionID: e.ID}, 1)

		var fieldErrs domain.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, []string{msgCategoryNameTaken}, fieldErrs[fieldName])
	})

	t.Run("failing to link still returns the category", func(t *testing.T) {
		elections := newFakeElections()
		elections.appendErr = errStoreDown
		categories := newFakeCategories(elections)
		svc := NewCategoryService(categories, elections)
		e := elections.seed(1, "E1")

		created, err := svc.CreateCategory(ctx, domain.Category{Name: "President", ElectionID: e.ID}, 1)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Empty(t, elections.links[e.ID])
		assert.Contains(t, categories.rows, created.ID)
	})

	t.Run("cancelled request still links", func(t *testing.T) {
		elections := newFakeElections()
		categories := newFakeCategories(elections)
		svc := NewCategoryService(categories, elections)
		e := elections.seed(1, "E1")

		created, err := svc.CreateCategory(ctx, domain.Category{Name: "Treasurer", ElectionID: e.ID}, 1)
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		svc.appendToElection(cancelled, domain.Category{ID: created.ID + 1, ElectionID: e.ID})
		assert.Len(t, elections.links[e.ID], 2)
	})
}

func TestCategoryService_Ownership(t *testing.T) {
	ctx := context.Background()
	elections := newFakeElections()
	categories := newFakeCategories(elections)
	svc := NewCategoryService(categories, elections)

	mine := elections.seed(1, "E1")
	other := elections.seed(1, "E2")
	foreign := elections.seed(2, "F1")
	c := categories.seed(mine.ID, "President")
	fc := categories.seed(foreign.ID, "Chair")
	orphan := categories.seed(12345, "Orphan")

	_, err := svc.GetCategory(ctx, c.ID, 1)
	assert.NoError(t, err)
	_, err = svc.GetCategory(ctx, fc.ID, 1)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.GetCategory(ctx, orphan.ID, 1)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.GetCategory(ctx, 999, 1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	t.Run("update can move to another owned election", func(t *testing.T) {
		updated, err := svc.UpdateCategory(ctx, c.ID, CategoryUpdate{Name: "Head", ElectionID: &other.ID}, 1)
		require.NoError(t, err)
		assert.Equal(t, "Head", updated.Name)
		assert.Equal(t, other.ID, updated.ElectionID)
	})

	t.Run("update cannot move to a foreign election", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, c.ID, CategoryUpdate{Name: "Head", ElectionID: &foreign.ID}, 1)

		var fieldErrs domain.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.True(t, fieldErrs.Has(fieldElectionID))
	})

	t.Run("a category with candidates cannot move", func(t *testing.T) {
		busy := categories.seed(mine.ID, "Treasurer")
		categories.candidates[busy.ID] = 1

		_, err := svc.UpdateCategory(ctx, busy.ID, CategoryUpdate{Name: "Treasurer", ElectionID: &other.ID}, 1)

		var fieldErrs domain.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, []string{msgCategoryHasCandidates}, fieldErrs[fieldElectionID])
		assert.Equal(t, mine.ID, categories.rows[busy.ID].ElectionID)

		renamed, err := svc.UpdateCategory(ctx, busy.ID, CategoryUpdate{Name: "Secretary", ElectionID: &mine.ID}, 1)
		require.NoError(t, err)
		assert.Equal(t, "Secretary", renamed.Name)
	})

	t.Run("delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteCategory(ctx, fc.ID, 1), ErrForbidden)
		require.NoError(t, svc.DeleteCategory(ctx, c.ID, 1))
		assert.NotContains(t, categories.rows, c.ID)
	})
}

func TestCategoryService_ListCategories(t *testing.T) {
	ctx := context.Background()
	elections := newFakeElections()
	categories := newFakeCategories(elections)
	svc := NewCategoryService(categories, elections)

	mine := elections.seed(1, "E1")
	foreign := elections.seed(2, "F1")

	_, total, err := svc.ListCategories(ctx, domain.ElectionScope{ElectionID: mine.ID}, 1)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.False(t, categories.counted)

	categories.seed(mine.ID, "A")
	categories.seed(mine.ID, "B")

	list, total, err := svc.ListCategories(ctx, domain.ElectionScope{ElectionID: mine.ID}, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(2), total)

	_, _, err = svc.ListCategories(ctx, domain.ElectionScope{ElectionID: foreign.ID}, 1)
	assert.ErrorIs(t, err, ErrForbidden)
	_, _, err = svc.ListCategories(ctx, domain.ElectionScope{ElectionID: 999}, 1)
	assert.ErrorIs(t, err, ErrElectionNotFound)
}
