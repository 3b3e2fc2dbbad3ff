package repository

import (
	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository/dao"
)

func userDaoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func electionDaoToDomain(e dao.Election) domain.Election {
	election := domain.Election{
		ID:         e.ID,
		Name:       e.Name,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Code:       e.Code,
		UserID:     e.UserID,
		Categories: categoriesDaoToDomain(e.Categories),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}

	// A zero owner means the join was not loaded.
	if e.User.ID != 0 {
		owner := userDaoToDomain(e.User).Summary()
		election.User = &owner
	}

	return election
}

func electionsDaoToDomain(elections []dao.Election) []domain.Election {
	result := make([]domain.Election, 0, len(elections))
	for _, e := range elections {
		result = append(result, electionDaoToDomain(e))
	}

	return result
}

func categoryDaoToDomain(c dao.ElectionCategory) domain.Category {
	category := domain.Category{
		ID:         c.ID,
		Name:       c.Name,
		ElectionID: c.ElectionID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	if c.Election.ID != 0 {
		election := electionDaoToDomain(c.Election)
		category.Election = &election
	}

	return category
}

func categoriesDaoToDomain(categories []dao.ElectionCategory) []domain.Category {
	result := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, categoryDaoToDomain(c))
	}

	return result
}

func candidateDaoToDomain(c dao.ElectionCandidate) domain.Candidate {
	candidate := domain.Candidate{
		ID:         c.ID,
		Name:       c.Name,
		PhotoURL:   c.PhotoURL,
		ElectionID: c.ElectionID,
		Categories: categoriesDaoToDomain(c.Categories),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	if c.Election.ID != 0 {
		election := electionDaoToDomain(c.Election)
		candidate.Election = &election
	}

	return candidate
}

func candidatesDaoToDomain(candidates []dao.ElectionCandidate) []domain.Candidate {
	result := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, candidateDaoToDomain(c))
	}

	return result
}

func voterDaoToDomain(v dao.Voter) domain.Voter {
	voter := domain.Voter{
		ID:         v.ID,
		Name:       v.Name,
		Email:      v.Email,
		Token:      v.Token,
		ElectionID: v.ElectionID,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}

	if v.Election.ID != 0 {
		election := electionDaoToDomain(v.Election)
		voter.Election = &election
	}

	return voter
}

func votersDaoToDomain(voters []dao.Voter) []domain.Voter {
	result := make([]domain.Voter, 0, len(voters))
	for _, v := range voters {
		result = append(result, voterDaoToDomain(v))
	}

	return result
}
