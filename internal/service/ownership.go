package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/evote-api/internal/domain"
)

type ElectionFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Election, error)
}

// ownedElection returns ErrElectionNotFound or ErrForbidden when userID cannot act on the
// election.
func ownedElection(ctx context.Context, repo ElectionFinder, electionID, userID uint) (domain.Election, error) {
	election, err := repo.FindByID(ctx, electionID)
	if err != nil {
		if errors.Is(err, ErrElectionNotFound) {
			return domain.Election{}, ErrElectionNotFound
		}

		return domain.Election{}, fmt.Errorf("repo.FindByID -> %w", err)
	}

	if !election.OwnedBy(userID) {
		return domain.Election{}, ErrForbidden
	}

	return election, nil
}

// electionForWrite is ownedElection for request payloads: a missing or foreign election is
// reported against election_id.
func electionForWrite(ctx context.Context, repo ElectionFinder, electionID, userID uint) (domain.Election, error) {
	election, err := ownedElection(ctx, repo, electionID, userID)
	if errors.Is(err, ErrElectionNotFound) || errors.Is(err, ErrForbidden) {
		return domain.Election{}, domain.NewFieldError(fieldElectionID, msgNoOwnedElection)
	}

	return election, err
}

// ownsParent reports whether a child resource's joined election belongs to userID. A child
// whose election no longer exists belongs to nobody.
func ownsParent(election *domain.Election, userID uint) bool {
	return election != nil && election.OwnedBy(userID)
}

// totalFor counts only when the page has items.
func totalFor(ctx context.Context, pageLen int, count func(ctx context.Context) (int64, error)) (int64, error) {
	if pageLen == 0 {
		return 0, nil
	}

	return count(ctx)
}
