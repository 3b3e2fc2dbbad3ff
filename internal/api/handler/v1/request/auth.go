package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/evote-api/internal/domain"
)

type RegisterRequest struct {
	Name                 string `json:"name" form:"name"`
	Email                string `json:"email" form:"email"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

func (req *RegisterRequest) Validate() domain.FieldErrors {
	return fieldErrors(validation.ValidateStruct(
		req,
		validation.Field(&req.Name, required("name")),
		validation.Field(&req.Email, required("email"), email("email")),
		validation.Field(&req.Password,
			required("password"),
			password("password"),
			confirmed("password", &req.PasswordConfirmation),
		),
	))
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (req *LoginRequest) Validate() domain.FieldErrors {
	return fieldErrors(validation.ValidateStruct(
		req,
		validation.Field(&req.Email, required("email"), email("email")),
		validation.Field(&req.Password, required("password")),
	))
}
