package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"leap-forms-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestValidationCarriesFields(t *testing.T) {
	err := apperror.Validation("Validation failed", map[string]string{"email": "Invalid email address"})
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "Validation failed", err.Error())
	assert.Equal(t, "Invalid email address", err.Fields["email"])
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("smtp down")
	err := apperror.Unavailable("Email service unavailable", cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.Code)
	assert.ErrorIs(t, err, cause)

	var appErr *apperror.AppError
	assert.True(t, errors.As(error(apperror.Internal(cause)), &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}
