package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		req    RegisterRequest
		errors map[string]string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", PasswordConfirmation: "secret1"},
		},
		{
			name: "all missing",
			req:  RegisterRequest{},
			errors: map[string]string{
				"name":     "The name field is required.",
				"email":    "The email field is required.",
				"password": "The password field is required.",
			},
		},
		{
			name: "bad email",
			req:  RegisterRequest{Name: "Ada", Email: "nope", Password: "secret1", PasswordConfirmation: "secret1"},
			errors: map[string]string{
				"email": "The email format is invalid.",
			},
		},
		{
			name: "short password",
			req:  RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "abc", PasswordConfirmation: "abc"},
			errors: map[string]string{
				"password": "The password must be at least 6 characters.",
			},
		},
		{
			name: "blank password",
			req:  RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "       ", PasswordConfirmation: "       "},
			errors: map[string]string{
				"password": "The password must be at least 6 characters.",
			},
		},
		{
			name: "confirmation mismatch",
			req:  RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", PasswordConfirmation: "secret2"},
			errors: map[string]string{
				"password": "The password confirmation does not match.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if tt.errors == nil {
				assert.Nil(t, errs)
				return
			}

			require.Len(t, errs, len(tt.errors))
			for field, msg := range tt.errors {
				assert.Equal(t, []string{msg}, errs[field], field)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Email: "ada@example.com", Password: "x"}
	assert.Nil(t, req.Validate())

	req = LoginRequest{Email: "ada"}
	errs := req.Validate()
	assert.Equal(t, []string{"The email format is invalid."}, errs["email"])
	assert.Equal(t, []string{"The password field is required."}, errs["password"])
}

func TestElectionRequest_Election(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		req := ElectionRequest{Name: "Board", StartTime: "2030-01-01", EndTime: "2030-01-02T10:00:00Z"}
		e, errs := req.Election(loc)
		require.Nil(t, errs)

		assert.Equal(t, "Board", e.Name)
		assert.Equal(t, time.Date(2029, 12, 31, 23, 0, 0, 0, time.UTC), e.StartTime)
		assert.Equal(t, time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC), e.EndTime)
	})

	t.Run("missing and invalid", func(t *testing.T) {
		req := ElectionRequest{StartTime: "yesterday"}
		_, errs := req.Election(loc)

		assert.Equal(t, []string{"The name field is required."}, errs["name"])
		assert.Equal(t, []string{"The start time is not a valid date format."}, errs["start_time"])
		assert.Equal(t, []string{"The end time field is required."}, errs["end_time"])
	})

	t.Run("start after end", func(t *testing.T) {
		req := ElectionRequest{Name: "Board", StartTime: "2030-01-03", EndTime: "2030-01-02"}
		_, errs := req.Election(loc)

		require.Len(t, errs, 1)
		assert.Equal(t, []string{msgStartAfterEnd}, errs["start_time"])
	})

	t.Run("start after end is reported with other failures", func(t *testing.T) {
		req := ElectionRequest{StartTime: "2030-02-01", EndTime: "2030-01-01"}
		_, errs := req.Election(loc)

		require.Len(t, errs, 2)
		assert.Equal(t, []string{"The name field is required."}, errs["name"])
		assert.Equal(t, []string{msgStartAfterEnd}, errs["start_time"])
	})
}

func TestCategoryRequests_Validate(t *testing.T) {
	create := CreateCategoryRequest{}
	errs := create.Validate()
	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("election_id"))

	zero := uint(0)
	update := UpdateCategoryRequest{Name: "Treasurer", ElectionID: &zero}
	errs = update.Validate()
	assert.Equal(t, []string{"The election id field is required."}, errs["election_id"])

	update = UpdateCategoryRequest{Name: "Treasurer"}
	assert.Nil(t, update.Validate())
}

func TestCandidateRequest_Validate(t *testing.T) {
	req := CreateCandidateRequest{Name: "Grace", ElectionID: 3, Categories: []uint{1, 2}}
	assert.Nil(t, req.Validate())

	req = CreateCandidateRequest{Name: "Grace"}
	errs := req.Validate()
	assert.Equal(t, []string{"The election id field is required."}, errs["election_id"])
}

func TestVoterRequest_Validate(t *testing.T) {
	req := VoterRequest{Name: "Linus", Email: "linus@example.com", ElectionID: 1}
	assert.Nil(t, req.Validate())

	req = VoterRequest{Name: "Linus", Email: "linus", ElectionID: 1}
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"The email format is invalid."}, errs["email"])
}

func TestMalformed(t *testing.T) {
	assert.Equal(t, []string{MsgMalformedBody}, Malformed()[FieldRequest])
}
