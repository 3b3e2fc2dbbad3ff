package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/dates"
)

const msgStartAfterEnd = "The start time must be before the end time"

// ElectionRequest is the body of both election create and update.
type ElectionRequest struct {
	Name      string `json:"name" form:"name"`
	StartTime string `json:"start_time" form:"start_time"`
	EndTime   string `json:"end_time" form:"end_time"`
}

// Election validates the request and returns the election it describes. Zone-less times are
// read in loc.
func (req *ElectionRequest) Election(loc *time.Location) (domain.Election, domain.FieldErrors) {
	errs := fieldErrors(validation.ValidateStruct(
		req,
		validation.Field(&req.Name, required("name")),
		validation.Field(&req.StartTime, required("start_time"), date("start_time", loc)),
		validation.Field(&req.EndTime, required("end_time"), date("end_time", loc)),
	))

	// The order check runs whenever both dates parse, even if other fields failed.
	start, startErr := dates.Parse(req.StartTime, loc)
	end, endErr := dates.Parse(req.EndTime, loc)
	if startErr == nil && endErr == nil && start.After(end) {
		if errs == nil {
			errs = domain.FieldErrors{}
		}
		errs.Merge(domain.NewFieldError("start_time", msgStartAfterEnd))
	}

	if errs != nil {
		return domain.Election{}, errs
	}

	return domain.Election{
		Name:      req.Name,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
	}, nil
}
