package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("nope")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindInvalidArgument, KindOf(InvalidArgument("bad")))
	assert.Equal(t, KindValidationFailed, KindOf(ValidationFailed("invalid")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	inner := NotFound("missing")
	wrapped := fmt.Errorf("loading sighting: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestWrapKeepsCauseReachable(t *testing.T) {
	cause := errors.New("record not found")
	err := Wrap(KindNotFound, "Sighting not found", cause)

	assert.EqualError(t, err, "Sighting not found")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(Unauthorized("nope")))
	assert.False(t, IsUnauthorized(NotFound("missing")))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestNewf(t *testing.T) {
	err := Newf(KindInvalidArgument, "sighting already reviewed (state %s)", "ACCEPTED")
	assert.EqualError(t, err, "sighting already reviewed (state ACCEPTED)")
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}
