package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrProfileNotFound.WithDetails("id 999")
	wrapped := errors.Wrap(detailed, "get profile")

	assert.ErrorIs(t, wrapped, ErrProfileNotFound)
	assert.NotErrorIs(t, wrapped, ErrStorageUnavailable)
	assert.Equal(t, "id 999", detailed.Details())
}

func TestBaseError_AsAppError(t *testing.T) {
	err := ErrProfileNotFound.WrapMessage("lookup")

	var appErr AppError
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
		assert.Equal(t, "PROFILE_NOT_FOUND", appErr.ErrorCode())
		assert.Equal(t, "Profile not found", appErr.Message())
	}
}
