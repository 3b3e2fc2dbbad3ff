package service

import (
	"errors"

	"github.com/vietanh2810/evote-api/internal/repository"
)

var (
	ErrForbidden = errors.New("resource belongs to another user")

	ErrElectionNotFound  = repository.ErrElectionNotFound
	ErrCategoryNotFound  = repository.ErrCategoryNotFound
	ErrCandidateNotFound = repository.ErrCandidateNotFound
	ErrVoterNotFound     = repository.ErrVoterNotFound
)

const (
	msgElectionNameTaken     = "An election with that name already exists"
	msgCategoryNameTaken     = "A category with that name already exists for this election"
	msgVoterNameTaken        = "A voter with that name already exists for this election"
	msgNoOwnedElection       = "No user-created election found with given ID"
	msgInvalidCategories     = "Some categories are invalid for given election"
	msgCategoryHasCandidates = "A category with candidates cannot move to another election"
	msgEmailTaken            = "Email has already been registered"

	fieldName       = "name"
	fieldElectionID = "election_id"
	fieldCategories = "categories"
	fieldEmail      = "email"
)
