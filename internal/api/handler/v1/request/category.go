package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/evote-api/internal/domain"
)

type CreateCategoryRequest struct {
	Name       string `json:"name" form:"name"`
	ElectionID uint   `json:"election_id" form:"election_id"`
}

func (req *CreateCategoryRequest) Validate() domain.FieldErrors {
	return fieldErrors(validation.ValidateStruct(
		req,
		validation.Field(&req.Name, required("name")),
		validation.Field(&req.ElectionID, required("election_id")),
	))
}

// UpdateCategoryRequest moves the category when ElectionID is present.
type UpdateCategoryRequest struct {
	Name       string `json:"name" form:"name"`
	ElectionID *uint  `json:"election_id" form:"election_id"`
}

func (req *UpdateCategoryRequest) Validate() domain.FieldErrors {
	return fieldErrors(validation.ValidateStruct(
		req,
		validation.Field(&req.Name, required("name")),
		validation.Field(&req.ElectionID, validation.NilOrNotEmpty.Error("The election id field is required.")),
	))
}
