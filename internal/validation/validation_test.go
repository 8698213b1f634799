package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "contact-manager/pkg/errors"
)

type sampleRequest struct {
	Username string  `json:"username" validate:"required,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Page     int     `form:"page" validate:"omitempty,gt=0"`
}

func TestStructValid(t *testing.T) {
	email := "jane@example.com"
	err := Struct(&sampleRequest{Username: "johndoe", Email: &email, Page: 2})
	assert.NoError(t, err)
}

func TestStructReportsWireFieldNames(t *testing.T) {
	bad := "not-an-email"
	err := Struct(&sampleRequest{Username: "", Email: &bad, Page: -1})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []apperrors.FieldViolation{
		{Field: "username", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
		{Field: "page", Message: "must be greater than 0"},
	}, verr.Violations)
}

func TestStructSkipsAbsentOptionalFields(t *testing.T) {
	err := Struct(&sampleRequest{Username: "johndoe"})
	assert.NoError(t, err)
}
