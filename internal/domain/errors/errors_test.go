package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("email: must be a valid email")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrContentNotFound)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "email: must be a valid email", err.Details())
	assert.Equal(t, "", ErrValidationFailed.Details())
}

func TestBaseError_WrapMessageStillMatchesAppError(t *testing.T) {
	err := ErrContentNotFound.WrapMessage("project 42")

	var appErr AppError
	assert.True(t, pkgerrors.As(err, &appErr))
	assert.Equal(t, "CONTENT_NOT_FOUND", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "project 42")
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := pkgerrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list projects")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to list projects", err.Details())
}
