package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/evote-api/internal/domain"
)

// VoterRequest is the body of both voter create and update.
type VoterRequest struct {
	Name       string `json:"name" form:"name"`
	Email      string `json:"email" form:"email"`
	ElectionID uint   `json:"election_id" form:"election_id"`
}

func (req *VoterRequest) Validate() domain.FieldErrors {
	return fieldErrors(validation.ValidateStruct(
		req,
		validation.Field(&req.Name, required("name")),
		validation.Field(&req.Email, required("email"), email("email")),
		validation.Field(&req.ElectionID, required("election_id")),
	))
}
