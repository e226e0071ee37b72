package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := Wrap(errors.New("boom"), ErrCourseFull.Code, ErrCourseFull.Status, "CS101 is full")

	got := FromError(wrapped)
	assert.Equal(t, "COURSE_FULL", got.Code)
	assert.Equal(t, http.StatusConflict, got.Status)
	assert.Equal(t, "CS101 is full: boom", got.Error())
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	got := FromError(errors.New("unexpected"))
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Nil(t, FromError(nil))
}

func TestCloneOverridesMessageOnly(t *testing.T) {
	clone := Clone(ErrNotFound, "course not found")
	assert.Equal(t, "course not found", clone.Message)
	assert.Equal(t, "resource not found", ErrNotFound.Message)
	assert.Equal(t, ErrNotFound.Code, clone.Code)
	assert.True(t, errors.Is(Wrap(ErrCacheMiss, "X", 500, "x"), ErrCacheMiss))
}
