package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/vitagotchi/pkg/errors"
)

func TestAppErrorMessage(t *testing.T) {
	err := errors.NewValidation("Please enter a first name.")
	assert.Equal(t, "Please enter a first name.", err.Error())

	wrapped := errors.NewPersistence("failed to read store", fmt.Errorf("permission denied"))
	assert.Equal(t, "failed to read store: permission denied", wrapped.Error())
}

func TestCodeSurvivesWrapping(t *testing.T) {
	inner := errors.NewNotFound("patient", nil)
	outer := fmt.Errorf("failed to look up patient: %w", inner)

	assert.True(t, errors.IsCode(outer, errors.ErrNotFound))
	assert.Equal(t, errors.ErrNotFound, errors.Code(outer))
}

func TestCodeDefaultsToInternal(t *testing.T) {
	assert.Equal(t, errors.ErrInternal, errors.Code(fmt.Errorf("plain error")))
	assert.False(t, errors.IsCode(fmt.Errorf("plain error"), errors.ErrValidation))
}
