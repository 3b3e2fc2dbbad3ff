package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/evote-api/internal/domain"
)

func newTestElectionService(repo *fakeElections) *ElectionService {
	svc := NewElectionService(repo)
	n := 0
	svc.newCode = func() string {
		n++
		return fmt.Sprintf("code-%d", n)
	}

	return svc
}

func TestElectionService_CreateElection(t *testing.T) {
	repo := newFakeElections()
	svc := newTestElectionService(repo)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := svc.CreateElection(ctx, domain.Election{Name: "E1", UserID: 1, StartTime: start, EndTime: start.AddDate(0, 0, 30)})
	require.NoError(t, err)
	assert.Equal(t, "code-1", first.Code)
	require.NotNil(t, first.User)
	assert.Equal(t, uint(1), first.User.ID)

	_, err = svc.CreateElection(ctx, domain.Election{Name: "E1", UserID: 1, StartTime: start, EndTime: start})
	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, []string{msgElectionNameTaken}, fieldErrs[fieldName])

	other, err := svc.CreateElection(ctx, domain.Election{Name: "E1", UserID: 2, StartTime: start, EndTime: start})
	require.NoError(t, err)
	assert.NotEqual(t, first.Code, other.Code)
	assert.Len(t, repo.rows, 2)
}

func TestElectionService_UpdateElection(t *testing.T) {
	repo := newFakeElections()
	svc := newTestElectionService(repo)
	ctx := context.Background()

	e1 := repo.seed(1, "E1")
	repo.seed(1, "E2")
	foreign := repo.seed(2, "F1")

	t.Run("keeps its own name and code", func(t *testing.T) {
		end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		updated, err := svc.UpdateElection(ctx, domain.Election{ID: e1.ID, Name: "E1", EndTime: end}, 1)
		require.NoError(t, err)
		assert.Equal(t, end, updated.EndTime)
		assert.Equal(t, e1.Code, updated.Code)
	})

	t.Run("name taken by a sibling", func(t *testing.T) {
		_, err := svc.UpdateElection(ctx, domain.Election{ID: e1.ID, Name: "E2"}, 1)

		var fieldErrs domain.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.True(t, fieldErrs.Has(fieldName))
	})

	t.Run("not owner", func(t *testing.T) {
		_, err := svc.UpdateElection(ctx, domain.Election{ID: foreign.ID, Name: "X"}, 1)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.UpdateElection(ctx, domain.Election{ID: 999, Name: "X"}, 1)
		assert.ErrorIs(t, err, ErrElectionNotFound)
	})
}

func TestElectionService_DeleteElection(t *testing.T) {
	repo := newFakeElections()
	svc := newTestElectionService(repo)
	ctx := context.Background()

	mine := repo.seed(1, "E1")
	foreign := repo.seed(2, "F1")

	assert.ErrorIs(t, svc.DeleteElection(ctx, foreign.ID, 1), ErrForbidden)
	assert.ErrorIs(t, svc.DeleteElection(ctx, 999, 1), ErrElectionNotFound)
	require.NoError(t, svc.DeleteElection(ctx, mine.ID, 1))
	assert.NotContains(t, repo.rows, mine.ID)
}

func TestElectionService_ListElections(t *testing.T) {
	repo := newFakeElections()
	svc := newTestElectionService(repo)
	ctx := context.Background()

	elections, total, err := svc.ListElections(ctx, domain.ElectionQuery{OwnerID: 1})
	require.NoError(t, err)
	assert.Empty(t, elections)
	assert.Zero(t, total)

	repo.seed(1, "E1")
	repo.seed(1, "E2")
	repo.seed(2, "F1")

	elections, total, err = svc.ListElections(ctx, domain.ElectionQuery{OwnerID: 1})
	require.NoError(t, err)
	assert.Len(t, elections, 2)
	assert.Equal(t, int64(2), total)
}
