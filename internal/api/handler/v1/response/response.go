package response

import (
	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/pagination"
)

type LoginUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

type LoginResponse struct {
	Status string    `json:"status"`
	User   LoginUser `json:"user"`
}

type RegisteredUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterResponse struct {
	Status string         `json:"status"`
	User   RegisteredUser `json:"user"`
}

type UserResponse struct {
	Status string      `json:"status"`
	User   domain.User `json:"user"`
}

type ElectionResponse struct {
	Status   string          `json:"status"`
	Election domain.Election `json:"election"`
}

type ElectionsResponse struct {
	Status            string              `json:"status"`
	Elections         []domain.Election   `json:"elections"`
	PaginationDetails *pagination.Details `json:"pagination_details,omitempty"`
}

type CategoryResponse struct {
	Status   string          `json:"status"`
	Category domain.Category `json:"category"`
}

type CategoriesResponse struct {
	Status            string              `json:"status"`
	Categories        []domain.Category   `json:"categories"`
	PaginationDetails *pagination.Details `json:"pagination_details,omitempty"`
}

type CandidateResponse struct {
	Status    string           `json:"status"`
	Candidate domain.Candidate `json:"candidate"`
}

type CandidatesResponse struct {
	Status            string              `json:"status"`
	Candidates        []domain.Candidate  `json:"candidates"`
	PaginationDetails *pagination.Details `json:"pagination_details,omitempty"`
}

type VoterResponse struct {
	Status string       `json:"status"`
	Voter  domain.Voter `json:"voter"`
}

type VotersResponse struct {
	Status            string              `json:"status"`
	Voters            []domain.Voter      `json:"voters"`
	PaginationDetails *pagination.Details `json:"pagination_details,omitempty"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Health struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
