package validator

import (
	"testing"

	domainerrors "atelier/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Internal string `json:"-"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signInRequest{Email: "studio@example.com", Password: "long-enough"}))

	err := v.Validate(&signInRequest{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "password", Rule: "min", Param: "8"},
	}, verr.Fields)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email (email)")
}
