package request

import (
	"errors"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/dates"
)

// FieldRequest is the key malformed bodies are reported under.
const FieldRequest = "request"

const MsgMalformedBody = "The request body is malformed."

// At least six characters, not all of them whitespace.
var passwordExp = regexp2.MustCompile(`^(?=.*\S).{6,}$`, regexp2.None)

func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func required(field string) validation.Rule {
	return validation.Required.Error("The " + humanize(field) + " field is required.")
}

func email(field string) validation.Rule {
	return is.Email.Error("The " + humanize(field) + " format is invalid.")
}

func password(field string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		ok, err := passwordExp.MatchString(s)
		if err != nil || !ok {
			return errors.New("The " + humanize(field) + " must be at least 6 characters.")
		}

		return nil
	})
}

func confirmed(field string, confirmation *string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s != *confirmation {
			return errors.New("The " + humanize(field) + " confirmation does not match.")
		}

		return nil
	})
}

func date(field string, loc *time.Location) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := dates.Parse(s, loc); err != nil {
			return errors.New("The " + humanize(field) + " is not a valid date format.")
		}

		return nil
	})
}

// fieldErrors converts the result of validation.ValidateStruct.
func fieldErrors(err error) domain.FieldErrors {
	if err == nil {
		return nil
	}

	errs := domain.FieldErrors{}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, fieldErr := range verrs {
			errs.Add(field, fieldErr.Error())
		}

		return errs
	}

	errs.Add(FieldRequest, err.Error())

	return errs
}

// Malformed is the error set for a body that could not be bound.
func Malformed() domain.FieldErrors {
	return domain.NewFieldError(FieldRequest, MsgMalformedBody)
}
