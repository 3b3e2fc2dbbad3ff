package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/evote-api/internal/domain"
)

// CreateCandidateRequest binds from JSON or from the multipart form that carries the photo.
type CreateCandidateRequest struct {
	Name       string `json:"name" form:"name"`
	ElectionID uint   `json:"election_id" form:"election_id"`
	Categories []uint `json:"categories" form:"categories"`
}

func (req *CreateCandidateRequest) Validate() domain.FieldErrors {
	return fieldErrors(validation.ValidateStruct(
		req,
		validation.Field(&req.Name, required("name")),
		validation.Field(&req.ElectionID, required("election_id")),
	))
}
