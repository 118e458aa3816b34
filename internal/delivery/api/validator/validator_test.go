package validator

import (
	"testing"

	domainerrors "github.com/Bilal-EZ-ZAIM/devopes/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Latitude *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signupRequest{Username: "amina", Email: "amina@example.com", Password: "s3cret!"})

	assert.NoError(t, err)
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	latitude := 95.0

	err := v.Validate(&signupRequest{Email: "not-an-email", Password: "abc", Latitude: &latitude})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "username is required")
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
	assert.Contains(t, appErr.Details(), "password must be at least 6")
	assert.Contains(t, appErr.Details(), "latitude must be at most 90")
}
